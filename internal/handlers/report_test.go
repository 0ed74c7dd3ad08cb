package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/probuild/bidding-api/internal/database"
	"github.com/probuild/bidding-api/internal/models"
	"github.com/probuild/bidding-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type reportTestEnv struct {
	db      *gorm.DB
	handler *ReportHandler
}

func setupReportTestEnv(t *testing.T) reportTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Contractor{},
		&models.Project{},
		&models.Bid{},
		&models.Skill{},
		&models.ContractorSkill{},
		&models.Supplier{},
		&models.Supplied{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	handler := NewReportHandler(
		repository.NewProjectRepository(db),
		repository.NewSkillRepository(db),
		repository.NewSupplyRepository(db),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	gin.SetMode(gin.TestMode)

	return reportTestEnv{db: db, handler: handler}
}

func reportRequest(t *testing.T, handler gin.HandlerFunc, url string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	handler(c)
	return w
}

func seedSupplies(t *testing.T, db *gorm.DB) {
	t.Helper()

	supplier := &models.Supplier{Name: "Acme Supply"}
	require.NoError(t, db.Create(supplier).Error)

	rows := []models.Supplied{
		{SupplierID: supplier.ID, Item: "nails", Quantity: 500, Price: 9.99},
		{SupplierID: supplier.ID, Item: "lumber", Quantity: 120, Price: 45.00},
		{SupplierID: supplier.ID, Item: "paint", Quantity: 40, Price: 60.00},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func TestReportHandler_SupplyStats(t *testing.T) {
	env := setupReportTestEnv(t)
	seedSupplies(t, env.db)

	w := reportRequest(t, env.handler.SupplyStats, "/api/reports/supplies/stats")

	require.Equal(t, http.StatusOK, w.Code)

	var stats repository.SupplyStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Equal(t, 40, stats.MinQuantity)
	require.Equal(t, 500, stats.MaxQuantity)
	require.InDelta(t, 220.0, stats.AvgQuantity, 0.01)
	require.Equal(t, 9.99, stats.MinPrice)
	require.Equal(t, 60.00, stats.MaxPrice)
	require.InDelta(t, 38.33, stats.AvgPrice, 0.01)
}

func TestReportHandler_ListSupplies_Filtered(t *testing.T) {
	env := setupReportTestEnv(t)
	seedSupplies(t, env.db)

	w := reportRequest(t, env.handler.ListSupplies, "/api/reports/supplies?min_quantity=100&max_price=50")

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Supplies []models.Supplied `json:"supplies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Supplies, 2)
	for _, s := range response.Supplies {
		require.GreaterOrEqual(t, s.Quantity, 100)
		require.Less(t, s.Price, 50.0)
	}
}

func TestReportHandler_ListSupplies_EmptyResult(t *testing.T) {
	env := setupReportTestEnv(t)
	seedSupplies(t, env.db)

	w := reportRequest(t, env.handler.ListSupplies, "/api/reports/supplies?min_quantity=10000&max_price=1")

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Supplies []models.Supplied `json:"supplies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Empty(t, response.Supplies)
}

func TestReportHandler_ListAllBids(t *testing.T) {
	env := setupReportTestEnv(t)

	customer := &models.User{Username: "c1", Email: "c1@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	require.NoError(t, env.db.Create(customer).Error)
	require.NoError(t, env.db.Create(&models.Customer{UserID: customer.ID}).Error)

	contractor := &models.User{Username: "k1", Email: "k1@example.com", PasswordHash: "x", Role: models.RoleContractor}
	require.NoError(t, env.db.Create(contractor).Error)
	require.NoError(t, env.db.Create(&models.Contractor{UserID: contractor.ID, Name: "K1 Construction"}).Error)

	withBid := &models.Project{
		Description: "Deck build",
		StartDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.ProjectStatusNotDone,
		CustomerID:  customer.ID,
	}
	withoutBid := &models.Project{
		Description: "Shed demolition",
		StartDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.ProjectStatusNotDone,
		CustomerID:  customer.ID,
	}
	require.NoError(t, env.db.Create(withBid).Error)
	require.NoError(t, env.db.Create(withoutBid).Error)

	require.NoError(t, env.db.Create(&models.Bid{
		ProjectID:    withBid.ID,
		ContractorID: contractor.ID,
		Price:        1200,
		Hours:        24,
	}).Error)

	w := reportRequest(t, env.handler.ListAllBids, "/api/reports/bids")

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Bids []repository.ProjectBidRow `json:"bids"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	// Only projects with at least one bid appear
	require.Len(t, response.Bids, 1)
	require.Equal(t, withBid.ID, response.Bids[0].ProjectID)
	require.Equal(t, "K1 Construction", response.Bids[0].ContractorName)
}

func TestReportHandler_ListSkillsOffered(t *testing.T) {
	env := setupReportTestEnv(t)

	contractor := &models.User{Username: "k1", Email: "k1@example.com", PasswordHash: "x", Role: models.RoleContractor}
	require.NoError(t, env.db.Create(contractor).Error)
	require.NoError(t, env.db.Create(&models.Contractor{UserID: contractor.ID, Name: "K1 Construction"}).Error)

	skill := &models.Skill{Name: "Masonry", Description: "Brick and stone work"}
	require.NoError(t, env.db.Create(skill).Error)

	require.NoError(t, env.db.Create(&models.ContractorSkill{
		ContractorID:    contractor.ID,
		SkillID:         skill.ID,
		YearsExperience: 12,
		Certification:   "Certified Mason",
	}).Error)

	w := reportRequest(t, env.handler.ListSkillsOffered, "/api/reports/skills")

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Skills []repository.SkillOfferedRow `json:"skills"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Skills, 1)
	require.Equal(t, "Masonry", response.Skills[0].SkillName)
	require.Equal(t, "K1 Construction", response.Skills[0].ContractorName)
	require.Equal(t, 12, response.Skills[0].YearsExperience)
}
