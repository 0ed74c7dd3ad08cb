package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/probuild/bidding-api/internal/constants"
	"github.com/probuild/bidding-api/internal/database"
	"github.com/probuild/bidding-api/internal/dto"
	"github.com/probuild/bidding-api/internal/models"
	"github.com/probuild/bidding-api/internal/repository"
	"github.com/probuild/bidding-api/internal/services"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db         *gorm.DB
	handler    *ProjectHandler
	bidService *services.BidService
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Contractor{},
		&models.Project{},
		&models.Bid{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	projectRepo := repository.NewProjectRepository(suite.db)
	bidRepo := repository.NewBidRepository(suite.db)
	suite.handler = NewProjectHandler(services.NewProjectService(projectRepo))
	suite.bidService = services.NewBidService(bidRepo, projectRepo)

	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectHandlerTestSuite) createTestCustomer(username string) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
		Role:         models.RoleCustomer,
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	suite.Require().NoError(suite.db.Create(&models.Customer{UserID: user.ID}).Error)
	return user
}

func (suite *ProjectHandlerTestSuite) createTestContractor(username, name string) *models.User {
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
		Role:         models.RoleContractor,
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	suite.Require().NoError(suite.db.Create(&models.Contractor{UserID: user.ID, Name: name}).Error)
	return user
}

func (suite *ProjectHandlerTestSuite) testContext(method, url string, body []byte, userID uint64) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set(constants.ContextKeyUserID, userID)

	return c, w
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	customer := suite.createTestCustomer("customer1")

	payload := map[string]string{
		"description": "Fence repair",
		"start_date":  "2024-01-01",
		"end_date":    "2024-02-01",
	}
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)

	c, w := suite.testContext(http.MethodPost, "/api/projects", body, customer.ID)

	suite.handler.CreateProject(c)

	suite.Equal(http.StatusCreated, w.Code)

	var response dto.ProjectDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("Fence repair", response.Description)
	suite.Equal(models.ProjectStatusNotDone, response.Status)
	suite.Equal(customer.ID, response.CustomerID)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_SequentialIDs() {
	customer := suite.createTestCustomer("customer1")

	makeProject := func(desc string) dto.ProjectDTO {
		payload := map[string]string{
			"description": desc,
			"start_date":  "2024-01-01",
			"end_date":    "2024-02-01",
		}
		body, err := json.Marshal(payload)
		suite.Require().NoError(err)

		c, w := suite.testContext(http.MethodPost, "/api/projects", body, customer.ID)
		suite.handler.CreateProject(c)
		suite.Require().Equal(http.StatusCreated, w.Code)

		var response dto.ProjectDTO
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
		return response
	}

	first := makeProject("First project")
	second := makeProject("Second project")

	// IDs come from the store's sequence, so back-to-back creations get
	// consecutive values
	suite.Equal(first.ID+1, second.ID)
}

func (suite *ProjectHandlerTestSuite) TestCreateProject_EndBeforeStart() {
	customer := suite.createTestCustomer("customer1")

	payload := map[string]string{
		"description": "Backwards project",
		"start_date":  "2024-02-01",
		"end_date":    "2024-01-01",
	}
	body, err := json.Marshal(payload)
	suite.Require().NoError(err)

	c, w := suite.testContext(http.MethodPost, "/api/projects", body, customer.ID)

	suite.handler.CreateProject(c)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestListProjects_ScopedToCustomer() {
	owner := suite.createTestCustomer("owner")
	other := suite.createTestCustomer("other")

	suite.Require().NoError(suite.db.Create(&models.Project{
		Description: "Owner's project",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.ProjectStatusNotDone,
		CustomerID:  owner.ID,
	}).Error)
	suite.Require().NoError(suite.db.Create(&models.Project{
		Description: "Other's project",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.ProjectStatusNotDone,
		CustomerID:  other.ID,
	}).Error)

	c, w := suite.testContext(http.MethodGet, "/api/projects", nil, owner.ID)

	suite.handler.ListProjects(c)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Projects []dto.ProjectDTO `json:"projects"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Projects, 1)
	suite.Equal("Owner's project", response.Projects[0].Description)
}

func (suite *ProjectHandlerTestSuite) TestListProjects_Empty() {
	customer := suite.createTestCustomer("lonely")

	c, w := suite.testContext(http.MethodGet, "/api/projects", nil, customer.ID)

	suite.handler.ListProjects(c)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Projects []dto.ProjectDTO `json:"projects"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Empty(response.Projects)
}

func (suite *ProjectHandlerTestSuite) TestListCustomerBids_JoinsContractorName() {
	customer := suite.createTestCustomer("c1")
	contractor := suite.createTestContractor("k1", "K1 Construction")

	project := &models.Project{
		Description: "Fence repair",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.ProjectStatusNotDone,
		CustomerID:  customer.ID,
	}
	suite.Require().NoError(suite.db.Create(project).Error)

	_, err := suite.bidService.PlaceBid(contractor.ID, services.PlaceBidInput{
		ProjectID: project.ID,
		Price:     500,
		Hours:     10,
	})
	suite.Require().NoError(err)

	c, w := suite.testContext(http.MethodGet, "/api/projects/bids", nil, customer.ID)

	suite.handler.ListCustomerBids(c)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Bids []repository.ProjectBidRow `json:"bids"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Bids, 1)

	row := response.Bids[0]
	suite.Equal(project.ID, row.ProjectID)
	suite.Equal("Fence repair", row.Description)
	suite.Equal(500.0, row.Price)
	suite.Equal(10, row.Hours)
	suite.Equal("K1 Construction", row.ContractorName)
}

func (suite *ProjectHandlerTestSuite) TestListCustomerBids_ScopedToCustomer() {
	customer := suite.createTestCustomer("c1")
	other := suite.createTestCustomer("c2")
	contractor := suite.createTestContractor("k1", "K1 Construction")

	otherProject := &models.Project{
		Description: "Someone else's project",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.ProjectStatusNotDone,
		CustomerID:  other.ID,
	}
	suite.Require().NoError(suite.db.Create(otherProject).Error)

	_, err := suite.bidService.PlaceBid(contractor.ID, services.PlaceBidInput{
		ProjectID: otherProject.ID,
		Price:     300,
		Hours:     5,
	})
	suite.Require().NoError(err)

	c, w := suite.testContext(http.MethodGet, "/api/projects/bids", nil, customer.ID)

	suite.handler.ListCustomerBids(c)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Bids []repository.ProjectBidRow `json:"bids"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Empty(response.Bids)
}

func (suite *ProjectHandlerTestSuite) TestListAssignedProjects_FiltersByStatus() {
	customer := suite.createTestCustomer("c1")
	contractor := suite.createTestContractor("k1", "K1 Construction")

	assigned := contractor.ID
	projects := []models.Project{
		{Description: "Active work", Status: models.ProjectStatusNotDone, CustomerID: customer.ID, ContractorID: &assigned},
		{Description: "Finished work", Status: models.ProjectStatusDone, CustomerID: customer.ID, ContractorID: &assigned},
		{Description: "Unassigned work", Status: models.ProjectStatusNotDone, CustomerID: customer.ID},
	}
	for i := range projects {
		suite.Require().NoError(suite.db.Create(&projects[i]).Error)
	}

	c, w := suite.testContext(http.MethodGet, "/api/contractor/projects", nil, contractor.ID)

	suite.handler.ListAssignedProjects(c)

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Projects []dto.ProjectDTO `json:"projects"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Projects, 1)
	suite.Equal("Active work", response.Projects[0].Description)
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
