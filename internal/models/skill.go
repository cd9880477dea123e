package models

// SkillDB represents a skill catalog entry in the database
type SkillDB struct {
	SkillID   int64  `json:"skill_id" db:"skill_id"`     // Primary key
	SkillName string `json:"skill_name" db:"skill_name"` // Unique skill name
}
