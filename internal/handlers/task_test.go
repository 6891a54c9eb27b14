package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okanoworks/orgtask-api/internal/constants"
	"github.com/okanoworks/orgtask-api/internal/database"
	"github.com/okanoworks/orgtask-api/internal/dto"
	"github.com/okanoworks/orgtask-api/internal/middleware"
	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/repository"
	"github.com/okanoworks/orgtask-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler *TaskHandler
	audit   *services.AuditLogger
}

func (suite *TaskHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.ActivityLog{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	taskRepo := repository.NewTaskRepository(suite.db)
	projectRepo := repository.NewProjectRepository(suite.db)
	userRepo := repository.NewUserRepository(suite.db)
	logRepo := repository.NewActivityLogRepository(suite.db)
	suite.audit = services.NewAuditLogger(logRepo, zap.NewNop())
	taskService := services.NewTaskService(taskRepo, projectRepo, userRepo, suite.audit)
	suite.handler = NewTaskHandler(taskService)
}

func (suite *TaskHandlerTestSuite) TearDownTest() {
	suite.audit.Flush()
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskHandlerTestSuite) createTestOrg(name string) *models.Organization {
	org := &models.Organization{Name: name}
	suite.db.Create(org)
	return org
}

func (suite *TaskHandlerTestSuite) createTestUser(name, email string, orgID uint64) *models.User {
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "x",
		Role:         models.RoleMember,
		OrgID:        orgID,
	}
	suite.db.Create(user)
	return user
}

func (suite *TaskHandlerTestSuite) createTestProject(name string, orgID uint64) *models.Project {
	project := &models.Project{
		Name:   name,
		Status: models.ProjectStatusActive,
		OrgID:  orgID,
	}
	suite.db.Create(project)
	return project
}

func (suite *TaskHandlerTestSuite) createTestTask(title string, projectID uint64, assignedTo *uint64, createdAt time.Time) *models.Task {
	task := &models.Task{
		Title:      title,
		ProjectID:  projectID,
		AssignedTo: assignedTo,
		Priority:   models.PriorityMedium,
		Status:     models.TaskStatusTodo,
		CreatedAt:  createdAt,
	}
	suite.db.Create(task)
	return task
}

func (suite *TaskHandlerTestSuite) memberIdentity(userID, orgID uint64) middleware.Identity {
	return middleware.Identity{UserID: userID, Role: models.RoleMember, OrgID: orgID}
}

func (suite *TaskHandlerTestSuite) createAuthContext(method, url string, body []byte, identity middleware.Identity) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	c.Request = req
	c.Set(constants.ContextKeyIdentity, identity)

	return c, w
}

func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	org := suite.createTestOrg("Acme")
	user := suite.createTestUser("Alice", "alice@acme.test", org.ID)
	project := suite.createTestProject("Launch", org.ID)

	body, _ := json.Marshal(map[string]any{
		"title":      "Write docs",
		"project_id": project.ID,
	})
	c, w := suite.createAuthContext("POST", "/api/tasks", body, suite.memberIdentity(user.ID, org.ID))

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.TaskResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(suite.T(), "Write docs", response.Task.Title)
	assert.Equal(suite.T(), models.PriorityMedium, response.Task.Priority)
	assert.Nil(suite.T(), response.Task.AssignedTo)

	suite.audit.Flush()
	var entry models.ActivityLog
	suite.Require().NoError(suite.db.First(&entry).Error)
	assert.Equal(suite.T(), "Created task: Write docs", entry.Action)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_ProjectInOtherOrg() {
	orgA := suite.createTestOrg("Org A")
	orgB := suite.createTestOrg("Org B")
	user := suite.createTestUser("Alice", "alice@a.test", orgA.ID)
	project := suite.createTestProject("b-project", orgB.ID)

	body, _ := json.Marshal(map[string]any{
		"title":      "sneaky",
		"project_id": project.ID,
	})
	c, w := suite.createAuthContext("POST", "/api/tasks", body, suite.memberIdentity(user.ID, orgA.ID))

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TaskHandlerTestSuite) TestCreateTask_AssigneeOutsideOrg() {
	orgA := suite.createTestOrg("Org A")
	orgB := suite.createTestOrg("Org B")
	alice := suite.createTestUser("Alice", "alice@a.test", orgA.ID)
	outsider := suite.createTestUser("Eve", "eve@b.test", orgB.ID)
	project := suite.createTestProject("Launch", orgA.ID)

	body, _ := json.Marshal(map[string]any{
		"title":       "misdirected",
		"project_id":  project.ID,
		"assigned_to": outsider.ID,
	})
	c, w := suite.createAuthContext("POST", "/api/tasks", body, suite.memberIdentity(alice.ID, orgA.ID))

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "outside your organization")

	var count int64
	suite.db.Model(&models.Task{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TaskHandlerTestSuite) TestListTasks_RequiresProjectID() {
	org := suite.createTestOrg("Acme")
	user := suite.createTestUser("Alice", "alice@acme.test", org.ID)

	c, w := suite.createAuthContext("GET", "/api/tasks", nil, suite.memberIdentity(user.ID, org.ID))

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Project ID is required")
}

func (suite *TaskHandlerTestSuite) TestListTasks_OtherOrgForbidden() {
	orgA := suite.createTestOrg("Org A")
	orgB := suite.createTestOrg("Org B")
	user := suite.createTestUser("Alice", "alice@a.test", orgA.ID)
	project := suite.createTestProject("b-project", orgB.ID)

	c, w := suite.createAuthContext("GET", fmt.Sprintf("/api/tasks?projectId=%d", project.ID), nil, suite.memberIdentity(user.ID, orgA.ID))

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *TaskHandlerTestSuite) TestListTasks_WithAssigneeNames() {
	org := suite.createTestOrg("Acme")
	alice := suite.createTestUser("Alice", "alice@acme.test", org.ID)
	project := suite.createTestProject("Launch", org.ID)

	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	suite.createTestTask("older", project.ID, &alice.ID, base)
	suite.createTestTask("newer", project.ID, nil, base.Add(time.Hour))

	c, w := suite.createAuthContext("GET", fmt.Sprintf("/api/tasks?projectId=%d", project.ID), nil, suite.memberIdentity(alice.ID, org.ID))

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var rows []map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Require().Len(rows, 2)

	// Newest first; unassigned rows carry a null name
	assert.Equal(suite.T(), "newer", rows[0]["title"])
	assert.Nil(suite.T(), rows[0]["assignee_name"])
	assert.Equal(suite.T(), "older", rows[1]["title"])
	assert.Equal(suite.T(), "Alice", rows[1]["assignee_name"])
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_Coalesce() {
	org := suite.createTestOrg("Acme")
	alice := suite.createTestUser("Alice", "alice@acme.test", org.ID)
	project := suite.createTestProject("Launch", org.ID)
	task := suite.createTestTask("Write docs", project.ID, &alice.ID, time.Now())

	body, _ := json.Marshal(map[string]string{"status": "done"})
	c, w := suite.createAuthContext("PATCH", "/api/tasks/1", body, suite.memberIdentity(alice.ID, org.ID))
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(task.ID)}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	assert.Equal(suite.T(), models.TaskStatusDone, stored.Status)
	assert.Equal(suite.T(), models.PriorityMedium, stored.Priority)
	suite.Require().NotNil(stored.AssignedTo)
	assert.Equal(suite.T(), alice.ID, *stored.AssignedTo)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_TransitiveOtherOrg() {
	orgA := suite.createTestOrg("Org A")
	orgB := suite.createTestOrg("Org B")
	alice := suite.createTestUser("Alice", "alice@a.test", orgA.ID)
	projectB := suite.createTestProject("b-project", orgB.ID)
	task := suite.createTestTask("b-task", projectB.ID, nil, time.Now())

	body, _ := json.Marshal(map[string]string{"status": "done"})
	c, w := suite.createAuthContext("PATCH", "/api/tasks/1", body, suite.memberIdentity(alice.ID, orgA.ID))
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(task.ID)}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	assert.Equal(suite.T(), models.TaskStatusTodo, stored.Status)
}

func (suite *TaskHandlerTestSuite) TestUpdateTask_AssigneeOutsideOrg() {
	orgA := suite.createTestOrg("Org A")
	orgB := suite.createTestOrg("Org B")
	alice := suite.createTestUser("Alice", "alice@a.test", orgA.ID)
	outsider := suite.createTestUser("Eve", "eve@b.test", orgB.ID)
	project := suite.createTestProject("Launch", orgA.ID)
	task := suite.createTestTask("Write docs", project.ID, nil, time.Now())

	body, _ := json.Marshal(map[string]any{"assigned_to": outsider.ID})
	c, w := suite.createAuthContext("PATCH", "/api/tasks/1", body, suite.memberIdentity(alice.ID, orgA.ID))
	c.Params = gin.Params{{Key: "id", Value: fmt.Sprint(task.ID)}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var stored models.Task
	suite.Require().NoError(suite.db.First(&stored, task.ID).Error)
	assert.Nil(suite.T(), stored.AssignedTo)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
