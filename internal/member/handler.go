package member

import (
	"net/http"

	"github.com/changhyeonkim/member-registry/internal/model"
	sharedError "github.com/changhyeonkim/member-registry/internal/shared/error"
	"github.com/changhyeonkim/member-registry/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberRegistry *MemberRegistry
}

func NewMemberHandler(memberRegistry *MemberRegistry) *MemberHandler {
	return &MemberHandler{
		memberRegistry: memberRegistry,
	}
}

// List handles GET /members
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberRegistry.ListActive(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, members)
}

// Get handles GET /members/:id
func (h *MemberHandler) Get(c *gin.Context) {
	var uri memberURI
	if !handler.BindURI(c, &uri) {
		return
	}

	result, err := h.memberRegistry.FindByID(c.Request.Context(), uri.ID)
	if err != nil {
		respondFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ApiResponse{Message: result.Message, Member: result.Member})
}

// Create handles POST /members
func (h *MemberHandler) Create(c *gin.Context) {
	var request MemberInput
	if !handler.BindJSON(c, &request) {
		return
	}

	result, err := h.memberRegistry.Add(c.Request.Context(), request)
	if err != nil {
		respondFailure(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.ApiResponse{Message: result.Message, Member: result.Member})
}

// Update handles PUT /members/:id
func (h *MemberHandler) Update(c *gin.Context) {
	var uri memberURI
	if !handler.BindURI(c, &uri) {
		return
	}

	var request MemberInput
	if !handler.BindJSON(c, &request) {
		return
	}

	result, err := h.memberRegistry.UpdateByID(c.Request.Context(), uri.ID, request)
	if err != nil {
		respondFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ApiResponse{Message: result.Message, Member: result.Member})
}

// Delete handles DELETE /members/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	var uri memberURI
	if !handler.BindURI(c, &uri) {
		return
	}

	result, err := h.memberRegistry.DeleteByID(c.Request.Context(), uri.ID)
	if err != nil {
		respondFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, model.ApiResponse{Message: result.Message})
}

// respondFailure maps registry failures to 400 with their own message,
// anything else to 500.
func respondFailure(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		if message, ok := FailureMessage(err); ok {
			resp = resp.WithMessage(message)
		}
		handler.RespondError(c, err, resp)
		return
	}

	handler.RespondError(c, err, sharedError.InternalServerError)
}
