package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/feral-file/nft-ledger/internal/api/middleware"
	"github.com/feral-file/nft-ledger/internal/domain"
	"github.com/feral-file/nft-ledger/internal/keeper"
	"github.com/feral-file/nft-ledger/internal/query"
)

// maxPayloadSize caps the opaque payload attached to a record. The payload
// is otherwise never inspected.
const maxPayloadSize = 1 << 20

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// IssueClass registers a new asset class with the caller as issuer
	// POST /api/v1/classes
	IssueClass(c *gin.Context)

	// MintNFT mints a record under a class to a recipient
	// POST /api/v1/nfts
	MintNFT(c *gin.Context)

	// EditNFT replaces a record's payload
	// PATCH /api/v1/nfts/:class_id/:local_id
	EditNFT(c *gin.Context)

	// SendNFT transfers a record from the caller to a receiver
	// POST /api/v1/nfts/:class_id/:local_id/transfer
	SendNFT(c *gin.Context)

	// BurnNFT retires a record owned by the caller
	// DELETE /api/v1/nfts/:class_id/:local_id
	BurnNFT(c *gin.Context)

	// GetClass retrieves a single class
	// GET /api/v1/classes/:class_id
	GetClass(c *gin.Context)

	// ListClasses pages through classes
	// GET /api/v1/classes?cursor=<cursor>&limit=<limit>
	ListClasses(c *gin.Context)

	// GetSupply returns the number of existing records under a class
	// GET /api/v1/classes/:class_id/supply
	GetSupply(c *gin.Context)

	// GetNFT retrieves a single record
	// GET /api/v1/nfts/:class_id/:local_id
	GetNFT(c *gin.Context)

	// ListNFTs pages through an owner's records
	// GET /api/v1/nfts?owner=<identity>&cursor=<cursor>&limit=<limit>
	ListNFTs(c *gin.Context)

	// ListClassNFTs pages through a class's records
	// GET /api/v1/classes/:class_id/nfts?cursor=<cursor>&limit=<limit>
	ListClassNFTs(c *gin.Context)

	// GetBalance returns how many records of a class an identity owns
	// GET /api/v1/owners/:owner/classes/:class_id/balance
	GetBalance(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	keeper *keeper.Keeper
	query  *query.Service
	db     *gorm.DB
}

// NewHandler creates a new REST API handler
func NewHandler(k *keeper.Keeper, q *query.Service, db *gorm.DB) Handler {
	return &handler{
		keeper: k,
		query:  q,
		db:     db,
	}
}

// IssueClass registers a new asset class
func (h *handler) IssueClass(c *gin.Context) {
	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	err := h.keeper.Issue(c.Request.Context(), keeper.IssueInput{
		ClassID:        domain.ClassID(req.ClassID),
		Name:           req.Name,
		Symbol:         req.Symbol,
		Description:    req.Description,
		MintRestricted: req.MintRestricted,
		EditRestricted: req.EditRestricted,
	}, middleware.Identity(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// MintNFT mints a record to a recipient
func (h *handler) MintNFT(c *gin.Context) {
	var req MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if len(req.Payload) > maxPayloadSize {
		respondBadRequest(c, "Payload too large")
		return
	}

	err := h.keeper.Mint(c.Request.Context(), keeper.MintInput{
		ClassID: domain.ClassID(req.ClassID),
		LocalID: domain.LocalID(req.LocalID),
		URI:     req.URI,
		Payload: datatypes.JSON(req.Payload),
	}, middleware.Identity(c), domain.Identity(req.Recipient))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// EditNFT replaces a record's payload
func (h *handler) EditNFT(c *gin.Context) {
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if len(req.Payload) > maxPayloadSize {
		respondBadRequest(c, "Payload too large")
		return
	}

	err := h.keeper.Edit(c.Request.Context(), keeper.EditInput{
		ClassID: domain.ClassID(c.Param("class_id")),
		LocalID: domain.LocalID(c.Param("local_id")),
		Payload: datatypes.JSON(req.Payload),
	}, middleware.Identity(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// SendNFT transfers a record from the caller to a receiver
func (h *handler) SendNFT(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	err := h.keeper.Send(
		c.Request.Context(),
		domain.ClassID(c.Param("class_id")),
		domain.LocalID(c.Param("local_id")),
		middleware.Identity(c),
		domain.Identity(req.Receiver),
	)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// BurnNFT retires a record owned by the caller
func (h *handler) BurnNFT(c *gin.Context) {
	err := h.keeper.Burn(
		c.Request.Context(),
		domain.ClassID(c.Param("class_id")),
		domain.LocalID(c.Param("local_id")),
		middleware.Identity(c),
	)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// GetClass retrieves a single class
func (h *handler) GetClass(c *gin.Context) {
	class, err := h.query.GetClass(c.Request.Context(), domain.ClassID(c.Param("class_id")))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapClassToDTO(class))
}

// ListClasses pages through classes
func (h *handler) ListClasses(c *gin.Context) {
	params, err := ParseListQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	classes, next, err := h.query.ListClasses(c.Request.Context(), params.Cursor, params.Limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := ClassListResponse{
		Classes:    make([]ClassResponse, len(classes)),
		NextCursor: next,
	}
	for i, class := range classes {
		response.Classes[i] = mapClassToDTO(class)
	}

	c.JSON(http.StatusOK, response)
}

// GetSupply returns the number of existing records under a class
func (h *handler) GetSupply(c *gin.Context) {
	count, err := h.query.Supply(c.Request.Context(), domain.ClassID(c.Param("class_id")))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetNFT retrieves a single record
func (h *handler) GetNFT(c *gin.Context) {
	nft, err := h.query.GetNFT(
		c.Request.Context(),
		domain.ClassID(c.Param("class_id")),
		domain.LocalID(c.Param("local_id")),
	)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapNFTToDTO(nft))
}

// ListNFTs pages through an owner's records
func (h *handler) ListNFTs(c *gin.Context) {
	params, err := ParseListNFTsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	nfts, next, err := h.query.ListNFTsByOwner(c.Request.Context(), domain.Identity(params.Owner), params.Cursor, params.Limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapNFTList(nfts, next))
}

// ListClassNFTs pages through a class's records
func (h *handler) ListClassNFTs(c *gin.Context) {
	params, err := ParseListQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	nfts, next, err := h.query.ListNFTsByClass(c.Request.Context(), domain.ClassID(c.Param("class_id")), params.Cursor, params.Limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapNFTList(nfts, next))
}

// GetBalance returns how many records of a class an identity owns
func (h *handler) GetBalance(c *gin.Context) {
	count, err := h.query.Balance(
		c.Request.Context(),
		domain.Identity(c.Param("owner")),
		domain.ClassID(c.Param("class_id")),
	)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, CountResponse{Count: count})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
