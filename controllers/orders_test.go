package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/storefronthq/storefront/backend/auth"
	"github.com/storefronthq/storefront/backend/middleware"
	"github.com/storefronthq/storefront/backend/models"
)

func setupSuite(tb testing.TB) (func(tb testing.TB), *models.Database) {
	log.Println("setup suite")
	gin.SetMode(gin.TestMode)

	dbName := "database_controllers_test.db"

	e := os.Remove(dbName)
	if e != nil {
		if !strings.Contains(e.Error(), "no such file or directory") {
			log.Fatal(e)
		}
	}

	gdb, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal(err)
	}

	err = gdb.AutoMigrate(&models.User{}, &models.Token{}, &models.Category{}, &models.Product{},
		&models.Order{}, &models.Message{})
	if err != nil {
		log.Fatal(err)
	}

	database := &models.Database{GormDB: gdb}
	models.DB = database

	return func(tb testing.TB) {
		log.Println("teardown suite")
		err = os.Remove(dbName)
		if err != nil {
			log.Fatal(err)
		}
	}, database
}

// actorAuth stands in for the bearer middleware and injects a fixed
// actor into the request context.
func actorAuth(actor auth.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.USER_ID_KEY, actor.Id)
		c.Set(middleware.USER_ROLE_KEY, string(actor.Role))
		c.Next()
	}
}

func testRouter(actor auth.Actor) *gin.Engine {
	r := gin.New()
	r.Use(actorAuth(actor))
	r.GET("/orders/:order_id", GetOrder)
	r.POST("/orders/", CreateOrder)
	r.PUT("/orders/:order_id", UpdateOrder)
	r.POST("/orders/:order_id/approve", ApproveOrder)
	r.POST("/orders/:order_id/cancel", CancelOrder)
	r.DELETE("/orders/:order_id", DeleteOrder)
	r.GET("/messages/", ListMessages)
	r.GET("/messages/:message_id", GetMessage)
	r.PUT("/messages/:message_id", UpdateMessage)
	r.DELETE("/messages/:message_id", DeleteMessage)
	return r
}

func doRequest(r *gin.Engine, method string, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedUser(tb testing.TB, db *models.Database, email string, role models.UserRole) *models.User {
	user := &models.User{
		Email:          email,
		FirstName:      "Test",
		LastName:       "User",
		PhoneNumber:    "555-" + email,
		HashedPassword: "not-a-real-hash",
		Status:         models.UserActive,
		Role:           role,
	}
	if err := db.GormDB.Create(user).Error; err != nil {
		tb.Fatal(err)
	}
	return user
}

func seedOrder(tb testing.TB, db *models.Database, orderNumber int, customer *models.User) *models.Order {
	category := &models.Category{Name: fmt.Sprintf("category-%v", orderNumber)}
	if err := db.GormDB.Create(category).Error; err != nil {
		tb.Fatal(err)
	}
	product := &models.Product{Name: fmt.Sprintf("product-%v", orderNumber), Price: 10, CategoryID: category.ID}
	if err := db.GormDB.Create(product).Error; err != nil {
		tb.Fatal(err)
	}
	order, err := db.CreateOrder(orderNumber, product.ID, customer.ID, customer.ID)
	if err != nil {
		tb.Fatal(err)
	}
	return order
}

func TestApproveOrderAsManager(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	customer := seedUser(t, db, "u1@example.com", models.RoleUser)
	manager := seedUser(t, db, "m1@example.com", models.RoleManager)
	order := seedOrder(t, db, 1001, customer)

	r := testRouter(auth.Actor{Id: manager.ID, Role: auth.RoleManager})
	w := doRequest(r, "POST", fmt.Sprintf("/orders/%v/approve", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	reloaded, err := db.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderApproved, reloaded.Status)
	assert.Equal(t, manager.ID, *reloaded.ApprovedBy)
	assert.NotNil(t, reloaded.DateApproved)
	assert.Nil(t, reloaded.CancelledBy)
}

func TestApproveOrderAsStandardUserForbidden(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	customer := seedUser(t, db, "u1@example.com", models.RoleUser)
	order := seedOrder(t, db, 1001, customer)

	// the requester owns the order in every colloquial sense and is
	// still denied
	r := testRouter(auth.Actor{Id: customer.ID, Role: auth.Role(customer.Role)})
	w := doRequest(r, "POST", fmt.Sprintf("/orders/%v/approve", order.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	reloaded, err := db.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderRequest, reloaded.Status)
	assert.Nil(t, reloaded.ApprovedBy)
}

func TestUpdateOrderAsStandardUserForbidden(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	customer := seedUser(t, db, "u1@example.com", models.RoleUser)
	other := seedUser(t, db, "u2@example.com", models.RoleSales)
	order := seedOrder(t, db, 1001, customer)

	r := testRouter(auth.Actor{Id: other.ID, Role: auth.Role(other.Role)})
	w := doRequest(r, "PUT", fmt.Sprintf("/orders/%v", order.ID), gin.H{"order_number": 2001})
	assert.Equal(t, http.StatusForbidden, w.Code)

	reloaded, err := db.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1001, reloaded.OrderNumber)
}

func TestCancelCancelledOrderConflict(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	customer := seedUser(t, db, "u1@example.com", models.RoleUser)
	managerOne := seedUser(t, db, "m1@example.com", models.RoleManager)
	managerTwo := seedUser(t, db, "m2@example.com", models.RoleManager)
	order := seedOrder(t, db, 1002, customer)

	r1 := testRouter(auth.Actor{Id: managerOne.ID, Role: auth.RoleManager})
	w := doRequest(r1, "POST", fmt.Sprintf("/orders/%v/cancel", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	r2 := testRouter(auth.Actor{Id: managerTwo.ID, Role: auth.RoleManager})
	w = doRequest(r2, "POST", fmt.Sprintf("/orders/%v/cancel", order.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	reloaded, err := db.GetOrder(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderCancelled, reloaded.Status)
	assert.Equal(t, managerOne.ID, *reloaded.CancelledBy)
}

func TestCreateOrderDuplicateNumberConflict(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	customer := seedUser(t, db, "u1@example.com", models.RoleUser)
	order := seedOrder(t, db, 1001, customer)

	r := testRouter(auth.Actor{Id: customer.ID, Role: auth.Role(customer.Role)})
	w := doRequest(r, "POST", "/orders/", gin.H{
		"order_number": 1001,
		"product_id":   order.ProductID,
		"customer_id":  customer.ID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteOrderAsManagerIgnoresStatus(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	customer := seedUser(t, db, "u1@example.com", models.RoleUser)
	manager := seedUser(t, db, "m1@example.com", models.RoleManager)
	order := seedOrder(t, db, 1001, customer)

	_, err := db.ApproveOrder(order.ID, manager.ID)
	assert.NoError(t, err)

	r := testRouter(auth.Actor{Id: manager.ID, Role: auth.RoleManager})
	w := doRequest(r, "DELETE", fmt.Sprintf("/orders/%v", order.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, "DELETE", fmt.Sprintf("/orders/%v", order.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApproveMissingOrderNotFound(t *testing.T) {
	teardownSuite, db := setupSuite(t)
	defer teardownSuite(t)

	manager := seedUser(t, db, "m1@example.com", models.RoleManager)

	r := testRouter(auth.Actor{Id: manager.ID, Role: auth.RoleManager})
	w := doRequest(r, "POST", "/orders/9999/approve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
