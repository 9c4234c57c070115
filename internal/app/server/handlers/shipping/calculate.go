package shipping

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecomplus/app-pakman/internal/app/domains/apimodel/request"
	"github.com/ecomplus/app-pakman/internal/app/domains/apimodel/response"
	"github.com/ecomplus/app-pakman/internal/app/pkg/errorx"
	"github.com/ecomplus/app-pakman/internal/app/pkg/ginx"
)

// Calculate 运费计算模块接口
// POST /ecom/modules/calculate-shipping
func (h *ShippingHandler) Calculate(c *gin.Context) {
	var req request.CalculateShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	ctx := c.Request.Context()
	params := req.ToParamsEntity()
	opts := req.ToMerchantOptions()

	quote, err := h.quoteService.Calculate(ctx, params, opts)
	if err != nil {
		var calcErr *errorx.CalculateError
		if errors.As(err, &calcErr) {
			ginx.CalculateError(c, calcErr)
			return
		}
		h.logger.Errorf(ctx, "calculate shipping failed: %v", err)
		ginx.CalculateError(c, errorx.NewCalculateErr(err.Error()))
		return
	}

	ginx.Success(c, response.FromQuoteEntity(quote))
}
