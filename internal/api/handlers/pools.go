package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"lbp-sim/internal/api/models"
	"lbp-sim/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PoolHandler handles pool-preset requests
type PoolHandler struct {
	poolDir string
	log     *zap.Logger
}

// NewPoolHandler creates a new pool handler
func NewPoolHandler(log *zap.Logger) *PoolHandler {
	dir := PoolDir()
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	log.Info("pool preset directory", zap.String("dir", dir))
	return &PoolHandler{poolDir: dir, log: log}
}

// ListPools handles GET /api/v1/pools
func (h *PoolHandler) ListPools(c *gin.Context) {
	pools := []models.PoolInfo{}

	entries, err := os.ReadDir(h.poolDir)
	if err != nil {
		h.log.Warn("failed to read pool directory", zap.String("dir", h.poolDir), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"pools": pools})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.poolDir, entry.Name())
		info, err := h.loadPoolInfo(path, entry.Name())
		if err != nil {
			h.log.Warn("skipping invalid pool preset", zap.String("path", path), zap.Error(err))
			continue
		}
		pools = append(pools, *info)
	}

	c.JSON(http.StatusOK, gin.H{"pools": pools})
}

func (h *PoolHandler) loadPoolInfo(path, filename string) (*models.PoolInfo, error) {
	pool, err := config.LoadPoolFile(path)
	if err != nil {
		return nil, err
	}

	// Preset ID is the filename without extension (e.g. "fair_launch.yaml" -> "fair_launch").
	id := strings.TrimSuffix(filename, ".yaml")
	name := pool.Name
	if name == "" {
		name = id
	}

	return &models.PoolInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.PoolSpecs{
			TokenA:        pool.TokenA,
			TokenB:        pool.TokenB,
			InitialTokenA: pool.InitialTokenA,
			InitialTokenB: pool.InitialTokenB,
			StartWeight:   pool.StartWeight,
			EndWeight:     pool.EndWeight,
			DurationHours: pool.DurationHours,
		},
	}, nil
}
