package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Tracking *TrackingRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Tracking: NewTrackingRepository(database),
	}
}
