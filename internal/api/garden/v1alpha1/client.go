package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// GardenServiceClient is the client API for GardenService
type GardenServiceClient interface {
	StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error)
	EndSession(ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption) (*EndSessionResponse, error)
	GetSnapshot(ctx context.Context, in *GetSnapshotRequest, opts ...grpc.CallOption) (*GetSnapshotResponse, error)
	GenerateSeed(ctx context.Context, in *GenerateSeedRequest, opts ...grpc.CallOption) (*GenerateSeedResponse, error)
	GenerateTree(ctx context.Context, in *GenerateTreeRequest, opts ...grpc.CallOption) (*GenerateTreeResponse, error)
	GenerateSprite(ctx context.Context, in *GenerateSpriteRequest, opts ...grpc.CallOption) (*GenerateSpriteResponse, error)
	PickFruit(ctx context.Context, in *PickFruitRequest, opts ...grpc.CallOption) (*PickFruitResponse, error)
	HarvestTree(ctx context.Context, in *HarvestTreeRequest, opts ...grpc.CallOption) (*HarvestTreeResponse, error)
	HarvestAll(ctx context.Context, in *HarvestAllRequest, opts ...grpc.CallOption) (*HarvestAllResponse, error)
	CombineInventory(ctx context.Context, in *CombineInventoryRequest, opts ...grpc.CallOption) (*CombineInventoryResponse, error)
	Sell(ctx context.Context, in *SellRequest, opts ...grpc.CallOption) (*SellResponse, error)
	PlaceFromInventory(ctx context.Context, in *PlaceFromInventoryRequest, opts ...grpc.CallOption) (*PlaceFromInventoryResponse, error)
	DragDrop(ctx context.Context, in *DragDropRequest, opts ...grpc.CallOption) (*DragDropResponse, error)
	RemoveSprite(ctx context.Context, in *RemoveSpriteRequest, opts ...grpc.CallOption) (*RemoveSpriteResponse, error)
	SpeedUp(ctx context.Context, in *SpeedUpRequest, opts ...grpc.CallOption) (*SpeedUpResponse, error)
}

type gardenServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGardenServiceClient creates a client that always calls with the json codec
func NewGardenServiceClient(cc grpc.ClientConnInterface) GardenServiceClient {
	return &gardenServiceClient{cc: cc}
}

func (c *gardenServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, FullMethod(method), in, out, opts...)
}

func (c *gardenServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionResponse, error) {
	out := new(StartSessionResponse)
	if err := c.invoke(ctx, "StartSession", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) EndSession(ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption) (*EndSessionResponse, error) {
	out := new(EndSessionResponse)
	if err := c.invoke(ctx, "EndSession", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) GetSnapshot(ctx context.Context, in *GetSnapshotRequest, opts ...grpc.CallOption) (*GetSnapshotResponse, error) {
	out := new(GetSnapshotResponse)
	if err := c.invoke(ctx, "GetSnapshot", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) GenerateSeed(ctx context.Context, in *GenerateSeedRequest, opts ...grpc.CallOption) (*GenerateSeedResponse, error) {
	out := new(GenerateSeedResponse)
	if err := c.invoke(ctx, "GenerateSeed", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) GenerateTree(ctx context.Context, in *GenerateTreeRequest, opts ...grpc.CallOption) (*GenerateTreeResponse, error) {
	out := new(GenerateTreeResponse)
	if err := c.invoke(ctx, "GenerateTree", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) GenerateSprite(ctx context.Context, in *GenerateSpriteRequest, opts ...grpc.CallOption) (*GenerateSpriteResponse, error) {
	out := new(GenerateSpriteResponse)
	if err := c.invoke(ctx, "GenerateSprite", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) PickFruit(ctx context.Context, in *PickFruitRequest, opts ...grpc.CallOption) (*PickFruitResponse, error) {
	out := new(PickFruitResponse)
	if err := c.invoke(ctx, "PickFruit", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) HarvestTree(ctx context.Context, in *HarvestTreeRequest, opts ...grpc.CallOption) (*HarvestTreeResponse, error) {
	out := new(HarvestTreeResponse)
	if err := c.invoke(ctx, "HarvestTree", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) HarvestAll(ctx context.Context, in *HarvestAllRequest, opts ...grpc.CallOption) (*HarvestAllResponse, error) {
	out := new(HarvestAllResponse)
	if err := c.invoke(ctx, "HarvestAll", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) CombineInventory(ctx context.Context, in *CombineInventoryRequest, opts ...grpc.CallOption) (*CombineInventoryResponse, error) {
	out := new(CombineInventoryResponse)
	if err := c.invoke(ctx, "CombineInventory", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) Sell(ctx context.Context, in *SellRequest, opts ...grpc.CallOption) (*SellResponse, error) {
	out := new(SellResponse)
	if err := c.invoke(ctx, "Sell", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) PlaceFromInventory(ctx context.Context, in *PlaceFromInventoryRequest, opts ...grpc.CallOption) (*PlaceFromInventoryResponse, error) {
	out := new(PlaceFromInventoryResponse)
	if err := c.invoke(ctx, "PlaceFromInventory", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) DragDrop(ctx context.Context, in *DragDropRequest, opts ...grpc.CallOption) (*DragDropResponse, error) {
	out := new(DragDropResponse)
	if err := c.invoke(ctx, "DragDrop", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) RemoveSprite(ctx context.Context, in *RemoveSpriteRequest, opts ...grpc.CallOption) (*RemoveSpriteResponse, error) {
	out := new(RemoveSpriteResponse)
	if err := c.invoke(ctx, "RemoveSprite", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gardenServiceClient) SpeedUp(ctx context.Context, in *SpeedUpRequest, opts ...grpc.CallOption) (*SpeedUpResponse, error) {
	out := new(SpeedUpResponse)
	if err := c.invoke(ctx, "SpeedUp", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
