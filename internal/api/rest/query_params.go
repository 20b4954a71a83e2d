package rest

import (
	"github.com/gin-gonic/gin"
)

const MAX_PAGE_SIZE = 100

// ListQueryParams holds the shared pagination parameters of list endpoints
type ListQueryParams struct {
	// Cursor is the opaque continuation cursor from a previous page
	Cursor string `form:"cursor"`
	// Limit is the page size
	Limit int `form:"limit,default=20"`
}

// ListNFTsQueryParams holds query parameters for GET /nfts
type ListNFTsQueryParams struct {
	// Owner filters the listing to records owned by this identity
	Owner string `form:"owner" binding:"required"`

	Cursor string `form:"cursor"`
	Limit  int    `form:"limit,default=20"`
}

// ParseListQuery parses the shared pagination parameters
func ParseListQuery(c *gin.Context) (*ListQueryParams, error) {
	var params ListQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}

// ParseListNFTsQuery parses query parameters for GET /nfts
func ParseListNFTsQuery(c *gin.Context) (*ListNFTsQueryParams, error) {
	var params ListNFTsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}
