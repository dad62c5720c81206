package entities

// StoreRecord backs the key-value store on a SQL database: one row per key,
// the value being the serialized collection.
type StoreRecord struct {
	Key   string `gorm:"primaryKey;size:191" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
	Timestamp
}
