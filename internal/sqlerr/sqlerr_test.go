package sqlerr

import (
	"database/sql"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/avelline/tally/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// constraintErr provokes a real driver error so Classify is tested
// against the codes the driver actually produces.
func constraintErr(t *testing.T, schema, offending string) error {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "classify.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)

	_, err = db.Exec(offending)
	require.Error(t, err)
	return err
}

func TestClassifyNil(t *testing.T) {
	assert.Equal(t, Other, Classify(nil))
}

func TestClassifyNoRows(t *testing.T) {
	assert.Equal(t, NoRows, Classify(sql.ErrNoRows))
	assert.Equal(t, NoRows, Classify(fmt.Errorf("fetching row: %w", sql.ErrNoRows)))
	assert.True(t, IsNoRows(sql.ErrNoRows))
}

func TestClassifyUniqueViolation(t *testing.T) {
	err := constraintErr(t,
		"CREATE TABLE c (name TEXT NOT NULL UNIQUE); INSERT INTO c (name) VALUES ('dup');",
		"INSERT INTO c (name) VALUES ('dup')")

	assert.Equal(t, UniqueViolation, Classify(err))
	assert.True(t, IsUniqueViolation(err))

	// Wrapping must not hide the driver error.
	assert.True(t, IsUniqueViolation(errors.Wrap(err, "inserting counter")))
}

func TestClassifyNotNullViolation(t *testing.T) {
	err := constraintErr(t,
		"CREATE TABLE c (name TEXT NOT NULL)",
		"INSERT INTO c (name) VALUES (NULL)")

	assert.Equal(t, NotNullViolation, Classify(err))
}

func TestClassifyCheckViolation(t *testing.T) {
	err := constraintErr(t,
		"CREATE TABLE c (n INTEGER CHECK (n > 0))",
		"INSERT INTO c (n) VALUES (-1)")

	assert.Equal(t, CheckViolation, Classify(err))
}

func TestClassifyOther(t *testing.T) {
	assert.Equal(t, Other, Classify(errors.New("connection reset")))
}

func TestHandleError(t *testing.T) {
	var httpErr *errs.HTTPError

	require.ErrorAs(t, HandleError(sql.ErrNoRows), &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)

	uniqueErr := constraintErr(t,
		"CREATE TABLE c (name TEXT UNIQUE); INSERT INTO c (name) VALUES ('x');",
		"INSERT INTO c (name) VALUES ('x')")
	require.ErrorAs(t, HandleError(uniqueErr), &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	require.ErrorAs(t, HandleError(errors.New("boom")), &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)

	assert.NoError(t, HandleError(nil))
}
