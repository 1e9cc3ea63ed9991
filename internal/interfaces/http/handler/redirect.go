package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appcampaign "github.com/scanlink/backend/internal/application/campaign"
)

// RedirectHandler serves the public scan surface: QR asset downloads,
// short-link redirects and the embeddable snippet. These routes live at
// the engine root, outside the versioned API group, because their URLs
// are printed on physical media and must never change.
type RedirectHandler struct {
	BaseHandler
	assetService    *appcampaign.AssetService
	resolverService *appcampaign.ResolverService
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(assetService *appcampaign.AssetService, resolverService *appcampaign.ResolverService) *RedirectHandler {
	return &RedirectHandler{
		assetService:    assetService,
		resolverService: resolverService,
	}
}

// RegisterPublicRoutes registers the unversioned public routes
func (h *RedirectHandler) RegisterPublicRoutes(engine *gin.Engine) {
	engine.GET("/qrcode/:campaignId", h.QRCode)
	engine.GET("/w/:identifier", h.Redirect)
	engine.GET("/embed/:identifier", h.Embed)
}

// QRCode handles GET /qrcode/:campaignId?format=png|svg
func (h *RedirectHandler) QRCode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		h.BadRequest(c, "Invalid campaign ID")
		return
	}

	format := c.DefaultQuery("format", appcampaign.FormatPNG)

	data, err := h.assetService.GenerateAsset(c.Request.Context(), id, format)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	contentType := "image/png"
	if format == appcampaign.FormatSVG {
		contentType = "image/svg+xml"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="qr-%s.%s"`, id, format))
	c.Data(http.StatusOK, contentType, data)
}

// Redirect handles GET /w/:identifier with a 302 to the product page
func (h *RedirectHandler) Redirect(c *gin.Context) {
	res, err := h.resolverService.Resolve(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Redirect(http.StatusFound, res.RedirectURL)
}

// Embed handles GET /embed/:identifier
func (h *RedirectHandler) Embed(c *gin.Context) {
	identifier := c.Param("identifier")

	if _, err := h.resolverService.Resolve(c.Request.Context(), identifier); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"embedCode": h.assetService.EmbedSnippet(identifier)})
}
