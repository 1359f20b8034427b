package model

import "time"

// MaxLastQueries bounds the per-user query log; oldest entries are evicted.
const MaxLastQueries = 5

// DefaultLanguage is assumed whenever no language has been remembered.
const DefaultLanguage = "en"

// QueryRecord is one remembered user query.
type QueryRecord struct {
	Intent    string    `json:"intent"`
	Disease   string    `json:"disease"`
	UserLang  string    `json:"user_lang"`
	Timestamp time.Time `json:"timestamp"`
}

// UserMemory is the small persisted conversational state of one user.
// Created lazily on first contact; the zero value is a valid empty memory.
type UserMemory struct {
	LastDisease string        `json:"last_disease"`
	UserLang    string        `json:"user_lang"`
	LastQueries []QueryRecord `json:"last_queries"`
}

// Lang returns the remembered language, defaulting to English.
func (m UserMemory) Lang() string {
	if m.UserLang == "" {
		return DefaultLanguage
	}
	return m.UserLang
}

// AppendQuery appends a record to the query log, evicting the oldest
// entries beyond MaxLastQueries.
func (m *UserMemory) AppendQuery(q QueryRecord) {
	m.LastQueries = append(m.LastQueries, q)
	if n := len(m.LastQueries); n > MaxLastQueries {
		m.LastQueries = m.LastQueries[n-MaxLastQueries:]
	}
}
