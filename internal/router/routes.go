package router

import (
	"context"
	"fmt"

	"github.com/changhyeonkim/member-registry/internal/config"
	"github.com/changhyeonkim/member-registry/internal/member"
	"github.com/changhyeonkim/member-registry/internal/meta"
	"github.com/changhyeonkim/member-registry/internal/shared/database"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection.
// db is nil when members are kept in memory.
func Setup(ctx context.Context, router *gin.Engine, cfg *config.Config, db *database.DB) error {
	// Meta handler (health check)
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	var memberRepository member.MemberRepository
	if db != nil {
		memberRepository = member.NewGormRepository(db.DB)
	} else {
		memberRepository = member.NewMemoryRepository()
	}

	// registry
	memberRegistry, err := member.NewMemberRegistry(ctx, memberRepository, cfg.Storage.Seed)
	if err != nil {
		return fmt.Errorf("회원 레지스트리 생성 실패: %w", err)
	}

	// handler
	memberHandler := member.NewMemberHandler(memberRegistry)

	members := router.Group("/members")
	{
		members.GET("", memberHandler.List)
		members.GET("/:id", memberHandler.Get)
		members.POST("", memberHandler.Create)
		members.PUT("/:id", memberHandler.Update)
		members.DELETE("/:id", memberHandler.Delete)
	}

	return nil
}
