package repository

import (
	"github.com/sefazor/stripe-memberships/internal/models"
	"gorm.io/gorm"
)

type MembershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{
		db: db,
	}
}

func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}
