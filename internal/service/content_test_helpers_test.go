package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/minglemoody/internal/content"
	"github.com/minglemoody/internal/db"
	"github.com/minglemoody/internal/storage/sqlstore"
	"gorm.io/gorm/logger"
)

func setupContentTestStore(t *testing.T) *content.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := db.Open(dsn, logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })

	return content.NewStore(sqlstore.New(gdb), nil)
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
