package request

import (
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etcart"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etoptions"
)

// ToParamsEntity 将 Request DTO 转换为领域对象
func (r *CalculateShippingRequest) ToParamsEntity() *etcart.ShippingParams {
	return &etcart.ShippingParams{
		From:                   toAddressEntity(r.Params.From),
		To:                     toAddressEntity(r.Params.To),
		Items:                  toItemsEntity(r.Params.Items),
		IsCheckoutConfirmation: r.Params.IsCheckoutConfirmation,
	}
}

// ToMerchantOptions 合并公开与私密配置为商户配置领域对象
func (r *CalculateShippingRequest) ToMerchantOptions() *etoptions.MerchantOptions {
	if r.Application == nil {
		return etoptions.Merge(nil, nil)
	}
	return etoptions.Merge(
		toOptionsEntity(r.Application.Data),
		toOptionsEntity(r.Application.HiddenData),
	)
}

func toAddressEntity(dto *Address) *etcart.Address {
	if dto == nil {
		return nil
	}
	return &etcart.Address{
		Zip:          dto.Zip,
		Street:       dto.Street,
		Number:       dto.Number,
		Complement:   dto.Complement,
		Borough:      dto.Borough,
		City:         dto.City,
		Province:     dto.Province,
		ProvinceCode: dto.ProvinceCode,
	}
}

func toItemsEntity(dtos []*CartItem) []*etcart.CartItem {
	if dtos == nil {
		return nil
	}
	items := make([]*etcart.CartItem, 0, len(dtos))
	for _, dto := range dtos {
		if dto == nil {
			continue
		}
		items = append(items, &etcart.CartItem{
			ProductID:  dto.ProductID,
			SKU:        dto.SKU,
			Quantity:   dto.Quantity,
			Price:      dto.Price,
			FinalPrice: dto.FinalPrice,
			Weight:     toMeasureEntity(dto.Weight),
			Dimensions: toDimensionsEntity(dto.Dimensions),
		})
	}
	return items
}

func toMeasureEntity(dto *Measure) *etcart.Measure {
	if dto == nil {
		return nil
	}
	return &etcart.Measure{
		Value: dto.Value,
		Unit:  dto.Unit,
	}
}

func toDimensionsEntity(dto *DimensionSet) *etcart.Dimensions {
	if dto == nil {
		return nil
	}
	return &etcart.Dimensions{
		Height: toMeasureEntity(dto.Height),
		Width:  toMeasureEntity(dto.Width),
		Length: toMeasureEntity(dto.Length),
	}
}

func toOptionsEntity(dto *AppConfig) *etoptions.MerchantOptions {
	if dto == nil {
		return nil
	}
	return &etoptions.MerchantOptions{
		APIKey:                dto.APIKey,
		Zip:                   dto.Zip,
		Label:                 dto.Label,
		FreeShippingFromValue: dto.FreeShippingFromValue,
		FreeShippingRules:     toRulesEntity(dto.FreeShippingRules),
		AdditionalPrice:       dto.AdditionalPrice,
		PostingDeadline:       toPostingDeadlineEntity(dto.PostingDeadline),
	}
}

func toRulesEntity(dtos []*FreeShippingRule) []*etoptions.FreeShippingRule {
	if dtos == nil {
		return nil
	}
	rules := make([]*etoptions.FreeShippingRule, 0, len(dtos))
	for _, dto := range dtos {
		if dto == nil {
			continue
		}
		rules = append(rules, &etoptions.FreeShippingRule{
			ZipRange:      toZipRangeEntity(dto.ZipRange),
			MinAmount:     dto.MinAmount,
			ProductIDs:    dto.ProductIDs,
			AllProductIDs: dto.AllProductIDs,
		})
	}
	return rules
}

func toZipRangeEntity(dto *ZipRange) *etoptions.ZipRange {
	if dto == nil {
		return nil
	}
	return &etoptions.ZipRange{
		Min: string(dto.Min),
		Max: string(dto.Max),
	}
}

func toPostingDeadlineEntity(dto *PostingDeadline) *etoptions.PostingDeadline {
	if dto == nil {
		return nil
	}
	return &etoptions.PostingDeadline{
		Days:          dto.Days,
		WorkingDays:   dto.WorkingDays,
		AfterApproval: dto.AfterApproval,
	}
}
