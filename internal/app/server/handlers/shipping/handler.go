package shipping

import (
	"context"

	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etcart"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etoptions"
	"github.com/ecomplus/app-pakman/internal/app/domains/entity/etquote"
	"github.com/ecomplus/app-pakman/internal/app/pkg/logger"
)

// QuoteCalculator 报价服务接口
type QuoteCalculator interface {
	Calculate(ctx context.Context, params *etcart.ShippingParams, opts *etoptions.MerchantOptions) (*etquote.Quote, error)
}

// ShippingHandler 运费计算 HTTP 处理器
type ShippingHandler struct {
	quoteService QuoteCalculator
	logger       logger.Logger
}

// NewShippingHandler 创建运费计算处理器实例
func NewShippingHandler(quoteService QuoteCalculator, log logger.Logger) *ShippingHandler {
	return &ShippingHandler{
		quoteService: quoteService,
		logger:       log,
	}
}
