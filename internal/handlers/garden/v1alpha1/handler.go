// Package v1alpha1 handles the GardenService grpc interface
package v1alpha1

import (
	"context"

	gardenv1alpha1 "github.com/KirkDiggler/garden-api/internal/api/garden/v1alpha1"
	"github.com/KirkDiggler/garden-api/internal/errors"
	"github.com/KirkDiggler/garden-api/internal/orchestrators/garden"
)

// HandlerConfig holds dependencies for the garden handler
type HandlerConfig struct {
	GardenService garden.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.GardenService == nil {
		return errors.InvalidArgument("garden service is required")
	}
	return nil
}

// Handler implements the GardenService gRPC server
type Handler struct {
	gardenv1alpha1.UnimplementedGardenServiceServer
	gardenService garden.Service
}

var _ gardenv1alpha1.GardenServiceServer = (*Handler)(nil)

// NewHandler creates a new garden handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gardenService: cfg.GardenService,
	}, nil
}

func requireSession(id string) error {
	if id == "" {
		return errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	return nil
}

// StartSession opens the player's garden or resumes the one already open
func (h *Handler) StartSession(
	ctx context.Context,
	req *gardenv1alpha1.StartSessionRequest,
) (*gardenv1alpha1.StartSessionResponse, error) {
	if req.PlayerId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("player_id is required"))
	}

	out, err := h.gardenService.StartSession(ctx, &garden.StartSessionInput{PlayerID: req.PlayerId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &gardenv1alpha1.StartSessionResponse{
		Snapshot: convertSnapshot(out.Snapshot),
		Resumed:  out.Resumed,
	}, nil
}

// EndSession discards a session
func (h *Handler) EndSession(
	ctx context.Context,
	req *gardenv1alpha1.EndSessionRequest,
) (*gardenv1alpha1.EndSessionResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	if _, err := h.gardenService.EndSession(ctx, &garden.EndSessionInput{SessionID: req.SessionId}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.EndSessionResponse{}, nil
}

// GetSnapshot returns the full session state
func (h *Handler) GetSnapshot(
	ctx context.Context,
	req *gardenv1alpha1.GetSnapshotRequest,
) (*gardenv1alpha1.GetSnapshotResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	out, err := h.gardenService.GetSnapshot(ctx, &garden.GetSnapshotInput{SessionID: req.SessionId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.GetSnapshotResponse{Snapshot: convertSnapshot(out.Snapshot)}, nil
}

func (h *Handler) GenerateSeed(
	ctx context.Context,
	req *gardenv1alpha1.GenerateSeedRequest,
) (*gardenv1alpha1.GenerateSeedResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	out, err := h.gardenService.GenerateSeed(ctx, &garden.GenerateSeedInput{SessionID: req.SessionId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.GenerateSeedResponse{Applied: out.Applied, Pos: convertPos(out.Pos)}, nil
}

func (h *Handler) GenerateTree(
	ctx context.Context,
	req *gardenv1alpha1.GenerateTreeRequest,
) (*gardenv1alpha1.GenerateTreeResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	out, err := h.gardenService.GenerateTree(ctx, &garden.GenerateTreeInput{
		SessionID: req.SessionId,
		Level:     req.Level,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.GenerateTreeResponse{Applied: out.Applied, Pos: convertPos(out.Pos)}, nil
}

func (h *Handler) GenerateSprite(
	ctx context.Context,
	req *gardenv1alpha1.GenerateSpriteRequest,
) (*gardenv1alpha1.GenerateSpriteResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}
	if req.Category == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("category is required"))
	}

	input := &garden.GenerateSpriteInput{
		SessionID: req.SessionId,
		Category:  req.Category,
		Level:     req.Level,
	}
	if req.Point != nil {
		p := toPosition(*req.Point)
		input.Position = &p
	}

	out, err := h.gardenService.GenerateSprite(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.GenerateSpriteResponse{Sprite: convertSprite(out.Sprite)}, nil
}

func (h *Handler) PickFruit(
	ctx context.Context,
	req *gardenv1alpha1.PickFruitRequest,
) (*gardenv1alpha1.PickFruitResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	out, err := h.gardenService.PickFruit(ctx, &garden.PickFruitInput{
		SessionID: req.SessionId,
		Pos:       toGridPos(req.Pos),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.PickFruitResponse{
		Applied:    out.Applied,
		FruitPos:   convertPos(out.FruitPos),
		FruitLevel: out.FruitLevel,
	}, nil
}

func (h *Handler) HarvestTree(
	ctx context.Context,
	req *gardenv1alpha1.HarvestTreeRequest,
) (*gardenv1alpha1.HarvestTreeResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	out, err := h.gardenService.HarvestTree(ctx, &garden.HarvestTreeInput{
		SessionID: req.SessionId,
		Pos:       toGridPos(req.Pos),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &gardenv1alpha1.HarvestTreeResponse{Applied: out.Applied, Count: out.Count}
	if out.Applied {
		resp.Key = out.Key.String()
	}
	return resp, nil
}

func (h *Handler) HarvestAll(
	ctx context.Context,
	req *gardenv1alpha1.HarvestAllRequest,
) (*gardenv1alpha1.HarvestAllResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	out, err := h.gardenService.HarvestAll(ctx, &garden.HarvestAllInput{SessionID: req.SessionId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.HarvestAllResponse{Seeds: out.Seeds, Fruits: out.Fruits}, nil
}

func (h *Handler) CombineInventory(
	ctx context.Context,
	req *gardenv1alpha1.CombineInventoryRequest,
) (*gardenv1alpha1.CombineInventoryResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	out, err := h.gardenService.CombineInventory(ctx, &garden.CombineInventoryInput{SessionID: req.SessionId})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.CombineInventoryResponse{
		Combined: out.Combined,
		Backpack: convertStacks(out.Backpack),
	}, nil
}

func (h *Handler) Sell(
	ctx context.Context,
	req *gardenv1alpha1.SellRequest,
) (*gardenv1alpha1.SellResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	out, err := h.gardenService.Sell(ctx, &garden.SellInput{SessionID: req.SessionId, Level: req.Level})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.SellResponse{
		Count:  out.Count,
		Amount: out.Amount,
		Wallet: convertWallet(out.Wallet),
	}, nil
}

func (h *Handler) PlaceFromInventory(
	ctx context.Context,
	req *gardenv1alpha1.PlaceFromInventoryRequest,
) (*gardenv1alpha1.PlaceFromInventoryResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}
	if req.Category == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("category is required"))
	}

	input := &garden.PlaceFromInventoryInput{
		SessionID: req.SessionId,
		Category:  req.Category,
		Level:     req.Level,
	}
	if req.Target != nil {
		p := toGridPos(*req.Target)
		input.Target = &p
	}

	out, err := h.gardenService.PlaceFromInventory(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.PlaceFromInventoryResponse{
		Applied:  out.Applied,
		Pos:      convertPos(out.Pos),
		Upgraded: out.Upgraded,
	}, nil
}

func (h *Handler) DragDrop(
	ctx context.Context,
	req *gardenv1alpha1.DragDropRequest,
) (*gardenv1alpha1.DragDropResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	source, err := toDragSource(req.Source)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	input := &garden.DragDropInput{SessionID: req.SessionId, Source: source}
	if req.Target != nil {
		target, err := toDragTarget(*req.Target)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		input.Target = &target
	}

	out, err := h.gardenService.DragDrop(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.DragDropResponse{Applied: out.Applied, Result: out.Result}, nil
}

func (h *Handler) RemoveSprite(
	ctx context.Context,
	req *gardenv1alpha1.RemoveSpriteRequest,
) (*gardenv1alpha1.RemoveSpriteResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	out, err := h.gardenService.RemoveSprite(ctx, &garden.RemoveSpriteInput{
		SessionID: req.SessionId,
		Point:     toPosition(req.Point),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &gardenv1alpha1.RemoveSpriteResponse{Applied: out.Applied}
	if out.Applied {
		sp := convertSprite(out.Sprite)
		resp.Sprite = &sp
	}
	return resp, nil
}

func (h *Handler) SpeedUp(
	ctx context.Context,
	req *gardenv1alpha1.SpeedUpRequest,
) (*gardenv1alpha1.SpeedUpResponse, error) {
	if err := requireSession(req.SessionId); err != nil {
		return nil, err
	}

	out, err := h.gardenService.SpeedUp(ctx, &garden.SpeedUpInput{
		SessionID: req.SessionId,
		Pos:       toGridPos(req.Pos),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &gardenv1alpha1.SpeedUpResponse{
		Applied: out.Applied,
		Cost:    out.Cost,
		Wallet:  convertWallet(out.Wallet),
	}, nil
}
