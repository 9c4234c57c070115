package svquote

import (
	"errors"
	"fmt"

	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etcart"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etoptions"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etquote"
	"github.com/ecomplus/app-pakman/internal/app/infra/pakman"
	"github.com/ecomplus/app-pakman/internal/app/pkg/errorx"
)

// buildService 把承运商成功响应映射为平台配送服务
// cost 同时作为 price 和 total_price，additional_price 再在其上调整
func buildService(params *etcart.ShippingParams, opts *etoptions.MerchantOptions, originZip string, result *pakman.QuotationResponse) *etquote.Service {
	line := &etquote.Line{
		From:                originAddress(params.From, originZip),
		To:                  params.To,
		Price:               result.Cost,
		TotalPrice:          result.Cost,
		Discount:            0,
		DeliveryDays:        int(result.ServiceLevelAgreement),
		WorkingDays:         true,
		PostingDeadlineDays: etquote.DefaultPostingDays,
		Flags:               etquote.DefaultFlags(),
	}

	if pd := opts.PostingDeadline; pd != nil {
		if pd.Days != nil {
			line.PostingDeadlineDays = *pd.Days
		}
		line.PostingWorkingDays = pd.WorkingDays
		line.PostingAfterApproval = pd.AfterApproval
	}

	if opts.AdditionalPrice != nil && *opts.AdditionalPrice != 0 {
		additional := *opts.AdditionalPrice
		if additional > 0 {
			line.Additionals = append(line.Additionals, &etquote.Additional{
				Tag:   etquote.AdditionalPriceTag,
				Label: etquote.AdditionalPriceLabel,
				Price: additional,
			})
		} else {
			// 负的附加费按折扣处理，discount 记为被减掉的金额
			line.Discount -= additional
		}
		line.TotalPrice += additional
	}

	label := opts.Label
	if label == "" {
		label = etquote.DefaultLabel
	}

	return &etquote.Service{
		Label:       label,
		Carrier:     etquote.CarrierName,
		ServiceName: etquote.ServiceName,
		ServiceCode: etquote.ServiceCode,
		Line:        line,
	}
}

// originAddress 回显发货地址，邮编替换为解析后的发货邮编
func originAddress(from *etcart.Address, originZip string) *etcart.Address {
	origin := etcart.Address{}
	if from != nil {
		origin = *from
	}
	origin.Zip = originZip
	return &origin
}

// mapCarrierError 把承运商调用失败分类为平台错误码
// 业务拒绝 → CALCULATE_FAILED；已知状态码的协议异常 → CALCULATE_ERR 并标注状态码；
// 纯传输失败 → CALCULATE_ERR 携带底层错误消息
func mapCarrierError(err error) *errorx.CalculateError {
	var carrierErr *pakman.CarrierError
	if errors.As(err, &carrierErr) {
		if carrierErr.BusinessMessage != "" {
			return errorx.NewCalculateFailed(carrierErr.BusinessMessage)
		}
		if carrierErr.StatusCode > 0 {
			return errorx.NewCalculateErr(fmt.Sprintf("%s (%d)", carrierErr.Error(), carrierErr.StatusCode))
		}
		return errorx.NewCalculateErr(carrierErr.Error())
	}
	return errorx.NewCalculateErr(err.Error())
}
