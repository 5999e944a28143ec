package dto

// ── user module DTOs ──

// UpdateUserRequest edits a user's profile. Nil fields stay untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// AssignRoleRequest changes a user's role.
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=member editor admin"`
}

// UserListRequest filters the user listing.
type UserListRequest struct {
	PaginationRequest
	Role string `form:"role" binding:"omitempty,oneof=member editor admin"`
}
