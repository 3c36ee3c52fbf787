package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/govlash-laundry/controllers"
	"github.com/yeremiapane/govlash-laundry/middlewares"
	"github.com/yeremiapane/govlash-laundry/models"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	serviceCtrl := controllers.NewServiceController(db)
	transactionCtrl := controllers.NewTransactionController(db)
	notificationCtrl := controllers.NewNotificationController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/register", userCtrl.Register)
	r.POST("/login", userCtrl.Login)

	// Katalog layanan bisa dilihat tanpa login
	r.GET("/services", serviceCtrl.GetAllServices)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	// ADMIN: kelola layanan, employee, monitoring transaksi, notifikasi
	admin := auth.Group("/admin")
	admin.Use(middlewares.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/services", serviceCtrl.GetAllServices)
		admin.POST("/services", serviceCtrl.CreateService)
		admin.DELETE("/services/:service_id", serviceCtrl.DeleteService)

		admin.GET("/employees", userCtrl.GetAllEmployees)
		admin.POST("/employees", userCtrl.AddEmployee)

		admin.GET("/transactions", transactionCtrl.GetAllTransactions)

		admin.POST("/notifications", notificationCtrl.SendCompletionNotification)
	}

	// CUSTOMER: buat order, riwayat, inbox notifikasi
	customer := auth.Group("/customer")
	customer.Use(middlewares.RequireRoles(models.RoleCustomer))
	{
		customer.GET("/services", serviceCtrl.GetAllServices)

		customer.POST("/transactions", transactionCtrl.CreateTransaction)
		customer.GET("/transactions", transactionCtrl.GetTransactionHistory)

		customer.GET("/notifications", notificationCtrl.GetMyNotifications)
		customer.PATCH("/notifications/:notif_id/read", notificationCtrl.MarkNotificationRead)
		customer.DELETE("/notifications/:notif_id", notificationCtrl.DeleteNotification)
	}

	// RECEPTIONIST: antrian assignment + pool staff
	receptionist := auth.Group("/receptionist")
	receptionist.Use(middlewares.RequireRoles(models.RoleReceptionist))
	{
		receptionist.GET("/transactions", transactionCtrl.GetAssignmentQueue)
		receptionist.GET("/staff", userCtrl.GetLaundryStaff)
		receptionist.POST("/assignments", transactionCtrl.AssignTransaction)
	}

	// STAFF: antrian kerja pribadi + selesaikan order
	staff := auth.Group("/staff")
	staff.Use(middlewares.RequireRoles(models.RoleLaundryStaff))
	{
		staff.GET("/jobs", transactionCtrl.GetJobQueue)
		staff.PATCH("/jobs/:transaction_id/finish", transactionCtrl.FinishTransaction)
	}

	return r
}
