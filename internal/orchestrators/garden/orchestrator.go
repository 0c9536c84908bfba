// Package garden implements the session orchestrator that owns every player's
// grid, backpack and sprite field and exposes the garden UI commands
package garden

//go:generate mockgen -destination=mock/mock_service.go -package=gardenmock github.com/KirkDiggler/garden-api/internal/orchestrators/garden Service

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/garden-api/internal/engine/backpack"
	"github.com/KirkDiggler/garden-api/internal/engine/grid"
	"github.com/KirkDiggler/garden-api/internal/engine/growth"
	"github.com/KirkDiggler/garden-api/internal/engine/sprites"
	entity "github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
	"github.com/KirkDiggler/garden-api/internal/pkg/clock"
	"github.com/KirkDiggler/garden-api/internal/pkg/idgen"
	"github.com/KirkDiggler/garden-api/internal/services/currency"
)

// Service is the garden command surface. Domain no-ops (full grid, empty
// source, missing sprite) succeed with Applied=false.
type Service interface {
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error)

	// Grid and backpack
	GenerateSeed(ctx context.Context, input *GenerateSeedInput) (*GenerateSeedOutput, error)
	GenerateTree(ctx context.Context, input *GenerateTreeInput) (*GenerateTreeOutput, error)
	PickFruit(ctx context.Context, input *PickFruitInput) (*PickFruitOutput, error)
	HarvestTree(ctx context.Context, input *HarvestTreeInput) (*HarvestTreeOutput, error)
	HarvestAll(ctx context.Context, input *HarvestAllInput) (*HarvestAllOutput, error)
	CombineInventory(ctx context.Context, input *CombineInventoryInput) (*CombineInventoryOutput, error)
	PlaceFromInventory(ctx context.Context, input *PlaceFromInventoryInput) (*PlaceFromInventoryOutput, error)
	DragDrop(ctx context.Context, input *DragDropInput) (*DragDropOutput, error)

	// Economy
	Sell(ctx context.Context, input *SellInput) (*SellOutput, error)
	SpeedUp(ctx context.Context, input *SpeedUpInput) (*SpeedUpOutput, error)

	// Sprites
	GenerateSprite(ctx context.Context, input *GenerateSpriteInput) (*GenerateSpriteOutput, error)
	RemoveSprite(ctx context.Context, input *RemoveSpriteInput) (*RemoveSpriteOutput, error)

	// Tick re-evaluates the growth of every tree in every session
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)
}

// SpriteField sizes the sprite plane
type SpriteField struct {
	Width             float64
	Height            float64
	BoxSize           float64
	Stride            float64
	MinDisplacement   float64
	PlacementAttempts int
}

// DefaultSpriteField matches the 15x8 garden
func DefaultSpriteField() SpriteField {
	return SpriteField{
		Width:             15,
		Height:            8,
		BoxSize:           60,
		Stride:            66,
		MinDisplacement:   5,
		PlacementAttempts: 50,
	}
}

// Config holds the dependencies for the garden orchestrator
type Config struct {
	Clock             clock.Clock
	IDGenerator       idgen.Generator
	SpriteIDGenerator idgen.Generator
	Currency          currency.Service
	EventBus          events.EventBus
	Roller            dice.Roller

	GridWidth  int
	GridHeight int
	Growth     growth.Rules
	Sprites    SpriteField
	// SpeedUpCostPerMinute is charged in primary currency per started minute
	SpeedUpCostPerMinute int64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SpriteIDGenerator == nil {
		vb.RequiredField("SpriteIDGenerator")
	}
	if c.Currency == nil {
		vb.RequiredField("Currency")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.GridWidth <= 0 {
		vb.Field("GridWidth", "must be positive")
	}
	if c.GridHeight <= 0 {
		vb.Field("GridHeight", "must be positive")
	}
	if c.Growth.BaseDuration <= 0 {
		vb.Field("Growth.BaseDuration", "must be positive")
	}
	if c.Growth.StepDuration < 0 {
		vb.Field("Growth.StepDuration", "cannot be negative")
	}
	if c.Growth.FruitFloor <= 0 || c.Growth.FruitCap < c.Growth.FruitFloor {
		vb.Field("Growth", "fruit cap must be at least the fruit floor, which must be positive")
	}
	if c.SpeedUpCostPerMinute < 0 {
		vb.Field("SpeedUpCostPerMinute", "cannot be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	clock      clock.Clock
	idGen      idgen.Generator
	spriteIDs  idgen.Generator
	currency   currency.Service
	eventBus   events.EventBus
	roller     dice.Roller
	gridWidth  int
	gridHeight int
	rules      growth.Rules
	field      SpriteField
	speedUp    int64

	mu       sync.RWMutex
	sessions map[string]*session
	byPlayer map[string]string
}

// NewOrchestrator creates a garden orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		clock:      cfg.Clock,
		idGen:      cfg.IDGenerator,
		spriteIDs:  cfg.SpriteIDGenerator,
		currency:   cfg.Currency,
		eventBus:   cfg.EventBus,
		roller:     cfg.Roller,
		gridWidth:  cfg.GridWidth,
		gridHeight: cfg.GridHeight,
		rules:      cfg.Growth,
		field:      cfg.Sprites,
		speedUp:    cfg.SpeedUpCostPerMinute,
		sessions:   make(map[string]*session),
		byPlayer:   make(map[string]string),
	}

	// fail at construction rather than on the first StartSession
	if _, err := o.newSpriteEngine(); err != nil {
		return nil, errors.Wrap(err, "invalid sprite field")
	}
	return o, nil
}

func (o *orchestrator) newSpriteEngine() (*sprites.Engine, error) {
	return sprites.NewEngine(&sprites.Config{
		Width:             o.field.Width,
		Height:            o.field.Height,
		BoxSize:           o.field.BoxSize,
		Stride:            o.field.Stride,
		MinDisplacement:   o.field.MinDisplacement,
		PlacementAttempts: o.field.PlacementAttempts,
		Roller:            o.roller,
		IDGenerator:       o.spriteIDs,
	})
}

// withSession runs fn holding the session lock
func (o *orchestrator) withSession(sessionID string, fn func(*session) error) error {
	if sessionID == "" {
		return errors.InvalidArgument("session ID is required")
	}

	o.mu.RLock()
	sess, ok := o.sessions[sessionID]
	o.mu.RUnlock()
	if !ok {
		return errors.SessionNotFound(sessionID)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess)
}

func (o *orchestrator) wallet(ctx context.Context, playerID string) (entity.Wallet, error) {
	out, err := o.currency.GetBalance(ctx, &currency.GetBalanceInput{PlayerID: playerID})
	if err != nil {
		return entity.Wallet{}, errors.Wrap(err, "failed to load balance")
	}
	return out.Wallet, nil
}

func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	wallet, err := o.wallet(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	if id, ok := o.byPlayer[input.PlayerID]; ok {
		sess := o.sessions[id]
		o.mu.Unlock()

		sess.mu.Lock()
		defer sess.mu.Unlock()
		return &StartSessionOutput{Snapshot: sess.snapshot(o.clock.Now(), wallet), Resumed: true}, nil
	}

	field, err := o.newSpriteEngine()
	if err != nil {
		o.mu.Unlock()
		return nil, errors.Wrap(err, "failed to create sprite field")
	}
	sess := &session{
		id:        o.idGen.Generate(),
		playerID:  input.PlayerID,
		startedAt: o.clock.Now(),
		grid:      grid.New(o.gridWidth, o.gridHeight, o.rules),
		backpack:  backpack.New(),
		sprites:   field,
	}
	o.sessions[sess.id] = sess
	o.byPlayer[sess.playerID] = sess.id
	o.mu.Unlock()

	slog.Info("garden session started",
		"session_id", sess.id,
		"player_id", sess.playerID)

	return &StartSessionOutput{Snapshot: sess.snapshot(sess.startedAt, wallet)}, nil
}

func (o *orchestrator) EndSession(_ context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	sess, ok := o.sessions[input.SessionID]
	if ok {
		delete(o.sessions, sess.id)
		delete(o.byPlayer, sess.playerID)
	}
	o.mu.Unlock()

	if !ok {
		return nil, errors.SessionNotFound(input.SessionID)
	}

	// wait for any in-flight command
	sess.mu.Lock()
	defer sess.mu.Unlock()

	slog.Info("garden session ended",
		"session_id", sess.id,
		"player_id", sess.playerID,
		"duration", o.clock.Now().Sub(sess.startedAt).String())

	return &EndSessionOutput{}, nil
}

func (o *orchestrator) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*GetSnapshotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out GetSnapshotOutput
	err := o.withSession(input.SessionID, func(sess *session) error {
		wallet, err := o.wallet(ctx, sess.playerID)
		if err != nil {
			return err
		}
		out.Snapshot = sess.snapshot(o.clock.Now(), wallet)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (o *orchestrator) Tick(ctx context.Context, _ *TickInput) (*TickOutput, error) {
	o.mu.RLock()
	all := make([]*session, 0, len(o.sessions))
	for _, sess := range o.sessions {
		all = append(all, sess)
	}
	o.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].id < all[j].id })

	out := &TickOutput{Sessions: len(all)}
	for _, sess := range all {
		if err := ctx.Err(); err != nil {
			return out, errors.Wrap(err, "tick interrupted")
		}
		out.TreesReady += o.tickSession(ctx, sess)
	}
	return out, nil
}

func (o *orchestrator) tickSession(ctx context.Context, sess *session) int {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	now := o.clock.Now()
	type ready struct {
		pos   grid.Pos
		level int
	}
	var done []ready
	sess.grid.EachTree(func(p grid.Pos, t *growth.Tree) {
		if t.UpdateGrowthStatus(now) {
			done = append(done, ready{pos: p, level: t.Level()})
		}
	})

	for _, r := range done {
		o.publishCell(ctx, EventTreeReady, sess, r.pos, entity.TreeKey(r.level))
	}
	return len(done)
}
