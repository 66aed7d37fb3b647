package model

import "time"

// swagger:model Clan
type Clan struct {
	BaseModel
	Name        string `gorm:"size:100;unique;not null" json:"name"`
	Emblem      string `gorm:"size:255" json:"emblem"`
	Description string `gorm:"size:500" json:"description"`
	LeaderID    uint   `gorm:"type:bigint unsigned;not null" json:"leaderId"`
}

func (Clan) TableName() string {
	return "clans"
}

// swagger:model ClanMember
type ClanMember struct {
	BaseModel
	ClanID uint `gorm:"uniqueIndex:idx_clan_user;type:bigint unsigned;not null" json:"clanId"`
	UserID uint `gorm:"uniqueIndex:idx_clan_user;type:bigint unsigned;not null" json:"userId"`
}

func (ClanMember) TableName() string {
	return "clan_members"
}

// ClanContribution records bananes a member moved into the clan war chest.
// swagger:model ClanContribution
type ClanContribution struct {
	BaseModel
	ClanID        uint      `gorm:"index;type:bigint unsigned;not null" json:"clanId"`
	UserID        uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Amount        int       `gorm:"not null" json:"amount"`
	ContributedAt time.Time `gorm:"not null" json:"contributedAt"`
}

func (ClanContribution) TableName() string {
	return "clan_contributions"
}
