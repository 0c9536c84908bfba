package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/suite"

	gardenv1alpha1 "github.com/KirkDiggler/garden-api/internal/api/garden/v1alpha1"
	"github.com/KirkDiggler/garden-api/internal/export"
)

type ExportTestSuite struct {
	suite.Suite
	snap *gardenv1alpha1.Snapshot
}

func TestExportSuite(t *testing.T) {
	suite.Run(t, new(ExportTestSuite))
}

func (s *ExportTestSuite) SetupTest() {
	s.snap = &gardenv1alpha1.Snapshot{
		SessionId: "session_1",
		Cells: []gardenv1alpha1.Cell{
			{Pos: gardenv1alpha1.Pos{Row: 0, Col: 0}, Kind: "seed", Name: "Seed"},
			{
				Pos:   gardenv1alpha1.Pos{Row: 0, Col: 1},
				Kind:  "tree",
				Level: 2,
				Name:  "Banana Tree",
				Tree:  &gardenv1alpha1.Tree{MaxFruits: 34, Growing: true, RemainingSeconds: 120},
			},
		},
		Backpack: []gardenv1alpha1.Stack{{Key: "fruit-0", Category: "fruit", Count: 7, Name: "Fruit"}},
		Sprites:  []gardenv1alpha1.Sprite{{Id: "sprite_1", Category: "classic", Level: 3, Point: gardenv1alpha1.Point{X: 1.5, Y: 2}}},
	}
}

func (s *ExportTestSuite) TestRows() {
	rows := export.Rows(s.snap)
	s.Require().Len(rows, 4)

	s.Equal("seed", rows[0].Key)
	s.Equal("tree-2", rows[1].Key)
	s.True(rows[1].Growing)
	s.Equal(int64(120), rows[1].RemainingSeconds)
	s.Equal(export.SectionBackpack, rows[2].Section)
	s.Equal(7, rows[2].Count)
	s.Equal(export.SectionSprite, rows[3].Section)
	s.Equal(1.5, rows[3].X)

	s.Nil(export.Rows(nil))
}

func (s *ExportTestSuite) TestWriteCSV() {
	var buf bytes.Buffer
	s.Require().NoError(export.WriteCSV(&buf, s.snap))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	s.Require().Len(lines, 5)
	s.True(strings.HasPrefix(lines[0], "section,key,name,level,count,row,col"))

	var back []*export.Row
	s.Require().NoError(gocsv.UnmarshalString(buf.String(), &back))
	s.Equal(export.Rows(s.snap), back)
}
