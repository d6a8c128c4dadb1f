package models

import (
	"log"
	"os"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSuite(tb testing.TB) (func(tb testing.TB), *Database) {
	log.Println("setup suite")

	// database file name
	dbName := "database_storage_test.db"

	// remove old database
	e := os.Remove(dbName)
	if e != nil {
		if !strings.Contains(e.Error(), "no such file or directory") {
			log.Fatal(e)
		}
	}

	// open and create a new database
	gdb, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal(err)
	}

	// migrate tables
	err = gdb.AutoMigrate(&User{}, &Token{}, &Category{}, &Product{}, &Order{}, &Message{})
	if err != nil {
		log.Fatal(err)
	}

	database := &Database{GormDB: gdb}
	DB = database

	// Return a function to teardown the test
	return func(tb testing.TB) {
		log.Println("teardown suite")
		err = os.Remove(dbName)
		if err != nil {
			log.Fatal(err)
		}
	}, database
}

func seedUser(tb testing.TB, db *Database, email string, role UserRole) *User {
	user := &User{
		Email:          email,
		FirstName:      "Test",
		LastName:       "User",
		PhoneNumber:    "555-" + email,
		HashedPassword: "not-a-real-hash",
		Status:         UserActive,
		Role:           role,
	}
	if err := db.GormDB.Create(user).Error; err != nil {
		tb.Fatal(err)
	}
	return user
}

func seedCatalog(tb testing.TB, db *Database) *Product {
	category := &Category{Name: "hardware", Description: "tools and parts"}
	if err := db.GormDB.Create(category).Error; err != nil {
		tb.Fatal(err)
	}
	product := &Product{Name: "wrench", Description: "adjustable", Price: 12.5, CategoryID: category.ID}
	if err := db.GormDB.Create(product).Error; err != nil {
		tb.Fatal(err)
	}
	return product
}

func init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}
