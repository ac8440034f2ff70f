// Package testdb provides helpers for tests that need a real PostgreSQL
// database.
//
// Tests obtain a connection with GetTestDBWithT, which skips the test when no
// database URL is configured and applies the embedded migrations once per
// process. Each test then runs inside WithTx, whose transaction is always
// rolled back, so tests can run in parallel without seeing each other's rows.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        taskStore := postgres.NewPostgresTaskStore(tx, nil)
//	        ...
//	    })
//	}
//
// Environment variables:
//
//   - DATABASE_URL: primary connection string
//   - TASKS_TEST_DB_URL: used when DATABASE_URL is empty
package testdb
