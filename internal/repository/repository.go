package repository

import "gorm.io/gorm"

// Repository aggregates every data access interface.
type Repository struct {
	User     UserRepository
	Club     ClubRepository
	Activity ActivityRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:     NewUserRepo(db),
		Club:     NewClubRepo(db),
		Activity: NewActivityRepo(db),
	}
}
