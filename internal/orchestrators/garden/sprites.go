package garden

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/garden-api/internal/engine/sprites"
	entity "github.com/KirkDiggler/garden-api/internal/entities/garden"
	"github.com/KirkDiggler/garden-api/internal/errors"
)

func (o *orchestrator) GenerateSprite(_ context.Context, input *GenerateSpriteInput) (*GenerateSpriteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	category, ok := entity.ParseSpriteCategory(input.Category)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown sprite category %q", input.Category).
			WithMeta("allowed", entity.SpriteCategoryNames())
	}

	out := &GenerateSpriteOutput{}
	err := o.withSession(input.SessionID, func(sess *session) error {
		sp, err := sess.sprites.AddSprite(category, input.Level, input.Position)
		if err != nil {
			return err
		}
		out.Sprite = spriteView(sp)

		slog.Debug("sprite added",
			"session_id", sess.id,
			"sprite_id", sp.ID,
			"category", string(sp.Category),
			"level", sp.Level,
			"pos", sp.Pos.String())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (o *orchestrator) RemoveSprite(_ context.Context, input *RemoveSpriteInput) (*RemoveSpriteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &RemoveSpriteOutput{}
	err := o.withSession(input.SessionID, func(sess *session) error {
		sp, ok := sess.sprites.RemoveSpriteAt(input.Point)
		if !ok {
			return nil
		}
		out.Applied = true
		out.Sprite = spriteView(sp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (o *orchestrator) dragSprite(ctx context.Context, sess *session, from, to sprites.Position, out *DragDropOutput) error {
	res, err := sess.sprites.MoveSprite(from, to)
	if err != nil {
		return errors.Wrap(err, "failed to move sprite")
	}

	out.Result = res.Outcome.String()
	out.Applied = res.Outcome != sprites.MoveNone
	if res.Outcome == sprites.MoveMerged {
		o.publishSprite(ctx, sess, res.Sprite)
	}
	return nil
}
