package corpusio

import (
	"database/sql"

	"github.com/tanakhlab/mesologia/core/corpus"
	"github.com/tanakhlab/mesologia/core/errors"
)

// ReadSQLite reads a corpus from a SQLite database containing a
// words(book, chapter, verse, word_num, text) table, ordered by rowid.
//
// The driver is selected at build time: pure Go modernc.org/sqlite by
// default, mattn/go-sqlite3 with -tags cgo_sqlite. Use OpenDB instead of
// sql.Open so the right driver name is used.
func ReadSQLite(path string) ([]corpus.RawWord, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, errors.Wrap(err, "open corpus database")
	}
	defer db.Close()

	rows, err := db.Query(
		`SELECT book, chapter, verse, word_num, text FROM words ORDER BY rowid`)
	if err != nil {
		return nil, &errors.DataError{Source: path, Message: "missing or malformed words table", Err: err}
	}
	defer rows.Close()

	var words []corpus.RawWord
	for rows.Next() {
		var w corpus.RawWord
		if err := rows.Scan(&w.Ref.Book, &w.Ref.Chapter, &w.Ref.Verse, &w.Ref.Word, &w.Text); err != nil {
			return nil, &errors.DataError{Source: path, Message: "bad words row", Err: err}
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "read corpus rows")
	}

	return words, nil
}

// OpenDB opens a SQLite database using the compiled-in driver.
func OpenDB(dataSourceName string) (*sql.DB, error) {
	return sql.Open(driverName, dataSourceName)
}

// DriverType returns "purego" or "cgo" depending on the build.
func DriverType() string {
	return driverType
}
