package database

// modernc.org/sqlite registers itself as database/sql driver "sqlite",
// which Connect passes to gorm for non-Postgres DSNs.
import _ "modernc.org/sqlite"
