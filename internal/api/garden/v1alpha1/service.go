// Package v1alpha1 defines the GardenService gRPC contract. Messages are plain
// Go structs carried by the json codec registered in this package.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "garden.api.v1alpha1.GardenService"

// GardenServiceServer is the server API for GardenService
type GardenServiceServer interface {
	StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error)
	EndSession(context.Context, *EndSessionRequest) (*EndSessionResponse, error)
	GetSnapshot(context.Context, *GetSnapshotRequest) (*GetSnapshotResponse, error)
	GenerateSeed(context.Context, *GenerateSeedRequest) (*GenerateSeedResponse, error)
	GenerateTree(context.Context, *GenerateTreeRequest) (*GenerateTreeResponse, error)
	GenerateSprite(context.Context, *GenerateSpriteRequest) (*GenerateSpriteResponse, error)
	PickFruit(context.Context, *PickFruitRequest) (*PickFruitResponse, error)
	HarvestTree(context.Context, *HarvestTreeRequest) (*HarvestTreeResponse, error)
	HarvestAll(context.Context, *HarvestAllRequest) (*HarvestAllResponse, error)
	CombineInventory(context.Context, *CombineInventoryRequest) (*CombineInventoryResponse, error)
	Sell(context.Context, *SellRequest) (*SellResponse, error)
	PlaceFromInventory(context.Context, *PlaceFromInventoryRequest) (*PlaceFromInventoryResponse, error)
	DragDrop(context.Context, *DragDropRequest) (*DragDropResponse, error)
	RemoveSprite(context.Context, *RemoveSpriteRequest) (*RemoveSpriteResponse, error)
	SpeedUp(context.Context, *SpeedUpRequest) (*SpeedUpResponse, error)
}

// UnimplementedGardenServiceServer can be embedded to satisfy GardenServiceServer
type UnimplementedGardenServiceServer struct{}

func (UnimplementedGardenServiceServer) StartSession(context.Context, *StartSessionRequest) (*StartSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartSession not implemented")
}

func (UnimplementedGardenServiceServer) EndSession(context.Context, *EndSessionRequest) (*EndSessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method EndSession not implemented")
}

func (UnimplementedGardenServiceServer) GetSnapshot(context.Context, *GetSnapshotRequest) (*GetSnapshotResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSnapshot not implemented")
}

func (UnimplementedGardenServiceServer) GenerateSeed(context.Context, *GenerateSeedRequest) (*GenerateSeedResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateSeed not implemented")
}

func (UnimplementedGardenServiceServer) GenerateTree(context.Context, *GenerateTreeRequest) (*GenerateTreeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateTree not implemented")
}

func (UnimplementedGardenServiceServer) GenerateSprite(context.Context, *GenerateSpriteRequest) (*GenerateSpriteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateSprite not implemented")
}

func (UnimplementedGardenServiceServer) PickFruit(context.Context, *PickFruitRequest) (*PickFruitResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PickFruit not implemented")
}

func (UnimplementedGardenServiceServer) HarvestTree(context.Context, *HarvestTreeRequest) (*HarvestTreeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HarvestTree not implemented")
}

func (UnimplementedGardenServiceServer) HarvestAll(context.Context, *HarvestAllRequest) (*HarvestAllResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method HarvestAll not implemented")
}

func (UnimplementedGardenServiceServer) CombineInventory(context.Context, *CombineInventoryRequest) (*CombineInventoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CombineInventory not implemented")
}

func (UnimplementedGardenServiceServer) Sell(context.Context, *SellRequest) (*SellResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Sell not implemented")
}

func (UnimplementedGardenServiceServer) PlaceFromInventory(context.Context, *PlaceFromInventoryRequest) (*PlaceFromInventoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PlaceFromInventory not implemented")
}

func (UnimplementedGardenServiceServer) DragDrop(context.Context, *DragDropRequest) (*DragDropResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DragDrop not implemented")
}

func (UnimplementedGardenServiceServer) RemoveSprite(context.Context, *RemoveSpriteRequest) (*RemoveSpriteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveSprite not implemented")
}

func (UnimplementedGardenServiceServer) SpeedUp(context.Context, *SpeedUpRequest) (*SpeedUpResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SpeedUp not implemented")
}

// RegisterGardenServiceServer registers srv on s
func RegisterGardenServiceServer(s grpc.ServiceRegistrar, srv GardenServiceServer) {
	s.RegisterService(&GardenService_ServiceDesc, srv)
}

// FullMethod returns the gRPC path of method
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unary[Req, Resp any](
	method string,
	call func(GardenServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(GardenServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(GardenServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// GardenService_ServiceDesc is the grpc.ServiceDesc for GardenService
//
//nolint:revive,stylecheck // mirrors protoc-gen-go-grpc naming
var GardenService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GardenServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("StartSession", GardenServiceServer.StartSession),
		unary("EndSession", GardenServiceServer.EndSession),
		unary("GetSnapshot", GardenServiceServer.GetSnapshot),
		unary("GenerateSeed", GardenServiceServer.GenerateSeed),
		unary("GenerateTree", GardenServiceServer.GenerateTree),
		unary("GenerateSprite", GardenServiceServer.GenerateSprite),
		unary("PickFruit", GardenServiceServer.PickFruit),
		unary("HarvestTree", GardenServiceServer.HarvestTree),
		unary("HarvestAll", GardenServiceServer.HarvestAll),
		unary("CombineInventory", GardenServiceServer.CombineInventory),
		unary("Sell", GardenServiceServer.Sell),
		unary("PlaceFromInventory", GardenServiceServer.PlaceFromInventory),
		unary("DragDrop", GardenServiceServer.DragDrop),
		unary("RemoveSprite", GardenServiceServer.RemoveSprite),
		unary("SpeedUp", GardenServiceServer.SpeedUp),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "garden/api/v1alpha1/garden.json",
}
