package route

import (
	"net/http"
	"strings"

	"git.thinkinpower.net/cardcheck/bdata"
	"git.thinkinpower.net/cardcheck/card"
	"git.thinkinpower.net/cardcheck/mod"
	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"
)

type handler struct {
	names   bdata.BrandNameStore
	dataDir string
}

func (h *handler) display(brand string) string {
	if h.names == nil {
		return brand
	}
	return h.names.DisplayName(brand)
}

func (h *handler) validatePath(ctx *gin.Context) {
	h.respond(ctx, ctx.Param("number"))
}

func (h *handler) validateBody(ctx *gin.Context) {
	var req mod.CardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		logger.Warnf("bind card request: %s", err)
		ctx.JSON(http.StatusOK, mod.Failure(mod.ResponseCodeInvalidParams, "cannot parse request body"))
		return
	}
	if req.Number == "" {
		ctx.JSON(http.StatusOK, mod.Failure(mod.ResponseCodeMissingParams, "number is required"))
		return
	}
	h.respond(ctx, req.Number)
}

// respond answers 200 for every outcome of the check, a malformed number
// included; the outcome is in data.status.
func (h *handler) respond(ctx *gin.Context, number string) {
	result := card.ValidateAndIdentify(number)
	logger.WithFields(logger.Fields{
		"status": result.Status.String(),
		"brand":  result.Brand,
	}).Debug("card checked")
	ctx.JSON(http.StatusOK, mod.Success(mod.NewCardResult(result, h.display)))
}

func (h *handler) brands(ctx *gin.Context) {
	rules := card.Rules()
	result := make([]mod.BrandInfo, 0, len(rules))
	for i, r := range rules {
		result = append(result, mod.BrandInfo{Name: r.Name, Display: h.display(r.Name), Order: i + 1})
	}
	ctx.JSON(http.StatusOK, mod.Success(result))
}

// brandOrder is the 1-based table position of name, 0 when unknown.
func brandOrder(name string) int {
	for i, r := range card.Rules() {
		if r.Name == name {
			return i + 1
		}
	}
	return 0
}

//新增品牌显示名称对应关系
func (h *handler) addBrandDisplay(ctx *gin.Context) {
	brand, name := ctx.Param("brand"), strings.TrimSpace(ctx.Param("name"))
	order := brandOrder(brand)
	if order == 0 || name == "" || strings.ContainsAny(name, "\r\n") {
		ctx.JSON(http.StatusOK, mod.Failure(mod.ResponseCodeInvalidParams, "invalid brand or name"))
		return
	}
	if h.names == nil {
		ctx.JSON(http.StatusOK, mod.Failure(mod.ResponseCodeFailure, bdata.ErrNoDataDir.Error()))
		return
	}
	if err := bdata.CreateBrandNameMapping(h.names, h.dataDir, brand, name); err != nil {
		logger.Errorf("create brand name mapping: %s", err)
		ctx.JSON(http.StatusOK, mod.Failure(mod.ResponseCodeFailure, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, mod.Success(mod.BrandInfo{Name: brand, Display: h.display(brand), Order: order}))
}
