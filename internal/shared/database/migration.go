package database

import (
	"fmt"
	"log/slog"

	"github.com/changhyeonkim/member-registry/internal/config"
	"github.com/changhyeonkim/member-registry/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		if cfg.Storage.Driver == config.StorageSQLite {
			// sqlite 는 비파괴 마이그레이션만 수행 (새 :memory: DB 에는 테이블이 없음)
			slog.Info("SQLite 스키마 동기화", "path", cfg.Database.SQLitePath)
			return runAutoMigrate(db)
		}
		slog.Info("⏭️  데이터베이스 마이그레이션 비활성화됨",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("🔧 데이터베이스 마이그레이션 시작 - 모든 테이블이 삭제되고 재생성됩니다!",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.IsProduction() {
		return fmt.Errorf("🚨 PRODUCTION 환경에서는 DB_AUTO_MIGRATE=true를 사용할 수 없습니다! 데이터 손실 방지를 위해 차단됨")
	}

	// Step 1: Drop all tables
	slog.Info("🗑️  기존 테이블 삭제 중...")
	if err := dropTables(db); err != nil {
		return fmt.Errorf("테이블 삭제 실패: %w", err)
	}

	// Step 2: Create tables
	slog.Info("📦 새 테이블 생성 중...")
	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	slog.Info("✅ 마이그레이션 완료!")
	return nil
}

// migrationModels lists models in dependency order (FK 참조 순서)
func migrationModels() []interface{} {
	return []interface{}{
		// Independent tables (no foreign keys)
		&model.Member{},
	}
}

// dropTables drops existing tables in reverse dependency order
func dropTables(db *gorm.DB) error {
	models := migrationModels()
	migrator := db.Migrator()

	for i := len(models) - 1; i >= 0; i-- {
		m := models[i]
		if !migrator.HasTable(m) {
			continue
		}
		if err := migrator.DropTable(m); err != nil {
			return fmt.Errorf("%T 삭제 실패: %w", m, err)
		}
		slog.Debug("테이블 삭제 성공", "model", fmt.Sprintf("%T", m))
	}

	return nil
}

// runAutoMigrate creates tables based on model definitions
func runAutoMigrate(db *gorm.DB) error {
	for _, m := range migrationModels() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("%T 마이그레이션 실패: %w", m, err)
		}
		slog.Debug("테이블 생성됨", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
