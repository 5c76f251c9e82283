package entity

type User struct {
	Base
	FirebaseUID      string  `db:"firebase_uid"`
	Name             string  `db:"name"`
	Email            string  `db:"email"`
	Phone            *string `db:"phone"`
	PhoneVerified    bool    `db:"phone_verified"`
	IsSeller         bool    `db:"is_seller"`
	ProfileCompleted bool    `db:"profile_completed"`
}
