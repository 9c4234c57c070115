package response

import (
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etcart"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etquote"
)

// FromQuoteEntity 从领域对象转换为响应 DTO
func FromQuoteEntity(quote *etquote.Quote) *CalculateShippingResponse {
	services := make([]*ShippingService, 0, len(quote.Services))
	for _, service := range quote.Services {
		services = append(services, fromServiceEntity(service))
	}

	return &CalculateShippingResponse{
		FreeShippingFromValue: quote.FreeShippingFromValue,
		ShippingServices:      services,
	}
}

func fromServiceEntity(entity *etquote.Service) *ShippingService {
	return &ShippingService{
		Label:        entity.Label,
		Carrier:      entity.Carrier,
		ServiceName:  entity.ServiceName,
		ServiceCode:  entity.ServiceCode,
		ShippingLine: fromLineEntity(entity.Line),
	}
}

func fromLineEntity(entity *etquote.Line) *ShippingLine {
	if entity == nil {
		return nil
	}

	line := &ShippingLine{
		From:       fromAddressEntity(entity.From),
		To:         fromAddressEntity(entity.To),
		Price:      entity.Price,
		TotalPrice: entity.TotalPrice,
		Discount:   entity.Discount,
		DeliveryTime: &DeliveryTime{
			Days:        entity.DeliveryDays,
			WorkingDays: entity.WorkingDays,
		},
		PostingDeadline: &PostingDeadline{
			Days:          entity.PostingDeadlineDays,
			WorkingDays:   entity.PostingWorkingDays,
			AfterApproval: entity.PostingAfterApproval,
		},
		Flags: entity.Flags,
	}

	for _, additional := range entity.Additionals {
		line.OtherAdditionals = append(line.OtherAdditionals, &Additional{
			Tag:   additional.Tag,
			Label: additional.Label,
			Price: additional.Price,
		})
	}

	return line
}

func fromAddressEntity(entity *etcart.Address) *Address {
	if entity == nil {
		return nil
	}
	return &Address{
		Zip:          entity.Zip,
		Street:       entity.Street,
		Number:       entity.Number,
		Complement:   entity.Complement,
		Borough:      entity.Borough,
		City:         entity.City,
		Province:     entity.Province,
		ProvinceCode: entity.ProvinceCode,
	}
}
