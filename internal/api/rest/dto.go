package rest

import (
	"encoding/json"
	"time"

	"github.com/feral-file/nft-ledger/internal/store/schema"
)

// IssueRequest is the body of POST /api/v1/classes
type IssueRequest struct {
	ClassID        string `json:"class_id" binding:"required"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	Description    string `json:"description"`
	MintRestricted bool   `json:"mint_restricted"`
	EditRestricted bool   `json:"edit_restricted"`
}

// MintRequest is the body of POST /api/v1/nfts
type MintRequest struct {
	ClassID   string          `json:"class_id" binding:"required"`
	LocalID   string          `json:"local_id" binding:"required"`
	URI       string          `json:"uri"`
	Payload   json.RawMessage `json:"payload"`
	Recipient string          `json:"recipient" binding:"required"`
}

// EditRequest is the body of PATCH /api/v1/nfts/:class_id/:local_id
type EditRequest struct {
	Payload json.RawMessage `json:"payload"`
}

// SendRequest is the body of POST /api/v1/nfts/:class_id/:local_id/transfer
type SendRequest struct {
	Receiver string `json:"receiver" binding:"required"`
}

// ClassResponse is the JSON shape of a class
type ClassResponse struct {
	ClassID        string    `json:"class_id"`
	Name           string    `json:"name"`
	Symbol         string    `json:"symbol"`
	Description    string    `json:"description"`
	MintRestricted bool      `json:"mint_restricted"`
	EditRestricted bool      `json:"edit_restricted"`
	Issuer         string    `json:"issuer"`
	CreatedAt      time.Time `json:"created_at"`
}

// NFTResponse is the JSON shape of an asset record
type NFTResponse struct {
	ClassID   string          `json:"class_id"`
	LocalID   string          `json:"local_id"`
	Denom     string          `json:"denom"`
	URI       string          `json:"uri"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ClassListResponse is the paginated class listing
type ClassListResponse struct {
	Classes    []ClassResponse `json:"classes"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

// NFTListResponse is the paginated record listing
type NFTListResponse struct {
	NFTs       []NFTResponse `json:"nfts"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

// CountResponse carries a derived supply or balance figure
type CountResponse struct {
	Count int64 `json:"count"`
}

// mapClassToDTO converts a class row to its response shape
func mapClassToDTO(class *schema.Class) ClassResponse {
	return ClassResponse{
		ClassID:        class.ClassID.String(),
		Name:           class.Name,
		Symbol:         class.Symbol,
		Description:    class.Description,
		MintRestricted: class.MintRestricted,
		EditRestricted: class.EditRestricted,
		Issuer:         class.Issuer.String(),
		CreatedAt:      class.CreatedAt,
	}
}

// mapNFTList converts a page of record rows to the listing shape
func mapNFTList(nfts []*schema.NFT, next string) NFTListResponse {
	response := NFTListResponse{
		NFTs:       make([]NFTResponse, len(nfts)),
		NextCursor: next,
	}
	for i, nft := range nfts {
		response.NFTs[i] = mapNFTToDTO(nft)
	}
	return response
}

// mapNFTToDTO converts a record row to its response shape
func mapNFTToDTO(nft *schema.NFT) NFTResponse {
	return NFTResponse{
		ClassID:   nft.ClassID.String(),
		LocalID:   nft.LocalID.String(),
		Denom:     nft.Denom.String(),
		URI:       nft.URI,
		Payload:   json.RawMessage(nft.Payload),
		CreatedAt: nft.CreatedAt,
		UpdatedAt: nft.UpdatedAt,
	}
}
