package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/capplan/internal/contract"
	"github.com/alexanderramin/capplan/internal/domain"
	"github.com/alexanderramin/capplan/internal/importer"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
}

// Scenarios

func (s *Server) handleListScenarios(c *gin.Context) {
	all, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))
	scenarios, err := s.svc.Scenarios.List(c.Request.Context(), all)
	if err != nil {
		s.fail(c, err)
		return
	}
	views := make([]contract.ScenarioView, 0, len(scenarios))
	for _, sc := range scenarios {
		views = append(views, contract.NewScenarioView(sc))
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"scenarios": views,
		"count":     len(views),
	})
}

func (s *Server) handleCreateScenario(c *gin.Context) {
	var req contract.CreateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sc, err := s.svc.Scenarios.Create(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"scenario": contract.NewScenarioView(sc),
	})
}

func (s *Server) handleGetScenario(c *gin.Context) {
	sc, err := s.svc.Scenarios.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"scenario": contract.NewScenarioView(sc),
	})
}

func (s *Server) handleUpdateScenario(c *gin.Context) {
	var req contract.UpdateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	sc, err := s.svc.Scenarios.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"scenario": contract.NewScenarioView(sc),
	})
}

func (s *Server) handleArchiveScenario(c *gin.Context) {
	if err := s.svc.Scenarios.Archive(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Scenario archived"})
}

func (s *Server) handleUnarchiveScenario(c *gin.Context) {
	if err := s.svc.Scenarios.Unarchive(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Scenario restored"})
}

func (s *Server) handleDeleteScenario(c *gin.Context) {
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))
	if err := s.svc.Scenarios.Delete(c.Request.Context(), c.Param("id"), force); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Scenario deleted"})
}

func (s *Server) handleSummary(c *gin.Context) {
	sum, err := s.svc.Capacity.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "summary": sum})
}

// Items

func (s *Server) handleListItems(c *gin.Context) {
	items, err := s.svc.Items.ListByScenario(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"items":   contract.NewItemViews(items),
		"count":   len(items),
	})
}

func (s *Server) handleCreateItem(c *gin.Context) {
	var req contract.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := s.svc.Items.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "item": contract.NewItemView(item)})
}

func (s *Server) handleGetItem(c *gin.Context) {
	item, err := s.svc.Items.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": contract.NewItemView(item)})
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	var req contract.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := s.svc.Items.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": contract.NewItemView(item)})
}

func (s *Server) handleScoreItem(c *gin.Context) {
	var req contract.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := s.svc.Items.Score(c.Request.Context(), c.Param("id"), domain.Role(c.Param("role")), req.Scores)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": contract.NewItemView(item)})
}

func (s *Server) handleFocusOverride(c *gin.Context) {
	var req contract.FocusOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	item, err := s.svc.Items.SetFocusOverride(c.Request.Context(), c.Param("id"), domain.Role(c.Param("role")), req.Weeks)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": contract.NewItemView(item)})
}

func (s *Server) handleDeleteItem(c *gin.Context) {
	if err := s.svc.Items.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item deleted"})
}

// Import

func (s *Server) handleImportItems(c *gin.Context) {
	s.importSchema(c, c.Param("id"))
}

func (s *Server) handleImportScenario(c *gin.Context) {
	s.importSchema(c, "")
}

func (s *Server) importSchema(c *gin.Context, scenarioID string) {
	schema, err := importer.DecodeImportSchema(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}
	res, err := s.svc.Import.ImportItemsFromSchema(c.Request.Context(), scenarioID, schema)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "import": res})
}

// Settings

func (s *Server) handleGetSettings(c *gin.Context) {
	view, err := s.svc.Settings.Get(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": view})
}

func (s *Server) handleSetSetting(c *gin.Context) {
	var req contract.SetSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	view, err := s.svc.Settings.Set(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": view})
}

func (s *Server) handleUnsetSetting(c *gin.Context) {
	view, err := s.svc.Settings.Unset(c.Request.Context(), c.Param("key"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": view})
}

// Estimate

func (s *Server) handleEstimate(c *gin.Context) {
	var req contract.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	resp, err := s.svc.Estimate.Estimate(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "estimate": resp})
}
