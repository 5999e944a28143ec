package dto

// ── club module DTOs ──

// CreateClubRequest registers a club in the directory.
type CreateClubRequest struct {
	Name        string `json:"name"        binding:"required,min=2,max=150"`
	Advised     *bool  `json:"advised"`
	Description string `json:"description" binding:"max=10000"`
	CoverImg    string `json:"cover_img"   binding:"omitempty,url,max=300"`
}

// UpdateClubRequest edits a club. Nil fields stay untouched.
type UpdateClubRequest struct {
	Name        *string `json:"name"        binding:"omitempty,min=2,max=150"`
	Advised     *bool   `json:"advised"`
	Description *string `json:"description" binding:"omitempty,max=10000"`
	CoverImg    *string `json:"cover_img"   binding:"omitempty,url,max=300"`
}

// ClubListRequest filters the club directory listing.
type ClubListRequest struct {
	PaginationRequest
	Advised *bool  `form:"advised"`
	Search  string `form:"search" binding:"omitempty,max=100"`
}
