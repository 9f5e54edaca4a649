package user

import (
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the interface for user profile data operations.
type UserRepository interface {
	GetUserByID(id uint) (*User, error)
	UpdateUser(u *User) error
	Search(filters SearchFilters, page, limit int) ([]User, int64, error)
	UpdatePerformanceCV(userID uint, sport Sport, summary PerformanceSummary) (PerformanceCV, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUserByID(id uint) (*User, error) {
	var u User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UpdateUser(u *User) error {
	return r.db.Save(u).Error
}

func (r *userRepository) Search(filters SearchFilters, page, limit int) ([]User, int64, error) {
	var users []User
	var total int64

	query := r.db.Model(&User{})

	if filters.Role != "" {
		query = query.Where("role = ?", filters.Role)
	}
	if filters.City != "" {
		query = query.Where("city ILIKE ?", "%"+filters.City+"%")
	}
	if filters.Level != "" {
		query = query.Where("level = ?", filters.Level)
	}
	if filters.Position != "" {
		query = query.Where("position ILIKE ?", "%"+filters.Position+"%")
	}
	if filters.Sport != "" {
		b, _ := json.Marshal([]string{filters.Sport})
		query = query.Where("sports @> ?::jsonb", string(b))
	}

	query.Count(&total)
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdatePerformanceCV replaces one sport's snapshot. The row is locked FOR
// UPDATE for the read-merge-write so concurrent writes to other sports
// serialize instead of clobbering each other.
func (r *userRepository) UpdatePerformanceCV(userID uint, sport Sport, summary PerformanceSummary) (PerformanceCV, error) {
	var merged PerformanceCV
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var u User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, userID).Error; err != nil {
			return err
		}
		merged = u.PerformanceCV.Merge(sport, summary)
		return tx.Model(&User{}).Where("id = ?", userID).Update("performance_cv", merged).Error
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}
