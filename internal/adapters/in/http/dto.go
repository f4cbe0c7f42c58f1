package http

import (
	"mealorders/internal/core/application/usecases/queries"
	"mealorders/internal/core/domain/model/kernel"
	"mealorders/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// domainID converts an id bound by the generated wrapper. The nil UUID is rejected.
func domainID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalDomainID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := domainID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func optionalAPIID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	converted := id.Bytes()
	return &converted
}

func created(id kernel.UUID) servers.Created {
	return servers.Created{Id: id.Bytes()}
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func toOrder(v queries.OrderView) servers.Order {
	lines := make([]servers.OrderLine, 0, len(v.Items))
	for _, line := range v.Items {
		lines = append(lines, servers.OrderLine{
			OrderItemId: line.OrderItemID.Bytes(),
			ItemId:      line.ItemID.Bytes(),
			ItemName:    line.ItemName,
			Quantity:    line.Quantity,
			Price:       line.Price.String(),
			Total:       line.Total.String(),
			Veg:         line.Veg,
		})
	}
	return servers.Order{
		OrderId:       v.OrderID.Bytes(),
		PaymentMode:   servers.PaymentMode(v.PaymentMode),
		PaymentStatus: servers.PaymentStatus(v.PaymentStatus),
		OrderStatus:   servers.OrderStatus(v.OrderStatus.String()),
		UserId:        v.UserID.Bytes(),
		UserName:      v.UserName,
		UserEmail:     v.UserEmail,
		AddressId:     optionalAPIID(v.AddressID),
		AddressLine1:  v.AddressLine1,
		AddressLine2:  v.AddressLine2,
		City:          v.City,
		Pincode:       v.Pincode,
		MenuId:        optionalAPIID(v.MenuID),
		Items:         lines,
		TotalAmount:   v.TotalAmount.String(),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func toOrders(views []queries.OrderView) []servers.Order {
	out := make([]servers.Order, 0, len(views))
	for _, v := range views {
		out = append(out, toOrder(v))
	}
	return out
}

func toItem(v queries.ItemView) servers.Item {
	return servers.Item{
		Id:          v.ID.Bytes(),
		MenuId:      v.MenuID.Bytes(),
		Name:        v.Name,
		Details:     v.Details,
		Price:       v.Price.String(),
		Stock:       v.Stock,
		IsVeg:       v.IsVeg,
		IsAvailable: v.IsAvailable,
		CreatedBy:   v.CreatedBy.String(),
		UpdatedBy:   v.UpdatedBy.String(),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func toItems(views []queries.ItemView) []servers.Item {
	out := make([]servers.Item, 0, len(views))
	for _, v := range views {
		out = append(out, toItem(v))
	}
	return out
}

func toMenu(v queries.MenuView) servers.Menu {
	kitchens := make([]servers.KitchenAddress, 0, len(v.Kitchens))
	for _, k := range v.Kitchens {
		kitchens = append(kitchens, servers.KitchenAddress{
			Id:           k.ID.Bytes(),
			AddressLine1: k.AddressLine1,
			AddressLine2: k.AddressLine2,
			City:         k.City,
			Pincode:      k.Pincode,
		})
	}
	return servers.Menu{
		Id:               v.ID.Bytes(),
		OwnerId:          v.OwnerID.Bytes(),
		Name:             v.Name,
		Details:          v.Details,
		Rating:           v.Rating,
		IsActive:         v.IsActive,
		KitchenAddresses: kitchens,
		CreatedBy:        v.CreatedBy.String(),
		UpdatedBy:        v.UpdatedBy.String(),
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func toMenus(views []queries.MenuView) []servers.Menu {
	out := make([]servers.Menu, 0, len(views))
	for _, v := range views {
		out = append(out, toMenu(v))
	}
	return out
}

func toAddresses(views []queries.AddressView) []servers.Address {
	out := make([]servers.Address, 0, len(views))
	for _, v := range views {
		out = append(out, servers.Address{
			Id:           v.ID.Bytes(),
			UserId:       v.UserID.Bytes(),
			AddressLine1: v.AddressLine1,
			AddressLine2: v.AddressLine2,
			Landmark:     v.Landmark,
			FlatOrBlock:  v.FlatOrBlock,
			City:         v.City,
			Pincode:      v.Pincode,
		})
	}
	return out
}
