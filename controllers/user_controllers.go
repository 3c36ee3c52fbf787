package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/govlash-laundry/models"
	"github.com/yeremiapane/govlash-laundry/utils"
	"github.com/yeremiapane/govlash-laundry/validators"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// currentUserID mengambil id user hasil AuthMiddleware dari context.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// Register -> registrasi customer baru.
// Semua field diterima sebagai string mentah; validasi penuh ada di validators.
func (uc *UserController) Register(c *gin.Context) {
	type request struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
		Gender          string `json:"gender"`
		DOB             string `json:"dob"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	in := validators.RegistrationInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Gender:          req.Gender,
		DOB:             req.DOB,
	}

	dob, err := validators.ValidateRegistration(in, models.NewUserDirectory(uc.DB))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
		DOB:      dob,
		Role:     models.RoleCustomer,
	}

	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.InfoLogger.Printf("New customer registered: %s", user.Username)

	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"user_id": user.ID,
	})
}

// Login -> cek username + password (dibandingkan apa adanya), kembalikan JWT.
func (uc *UserController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if input.Username == "" || input.Password == "" {
		utils.RespondAppError(c, utils.NewValidationError("Username and Password cannot be empty."))
		return
	}

	var user models.User
	if err := uc.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid Username or Password."))
		return
	}

	if user.Password != input.Password {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Invalid Username or Password."))
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for user: %s (role=%s)", user.Username, user.Role)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":     token,
		"user_role": string(user.Role),
	})
}

// GetProfile -> identitas user dari token.
func (uc *UserController) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		utils.RespondAppError(c, utils.NewNotFoundError("User not found."))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"gender":   user.Gender,
		"role":     user.Role,
	})
}

// GetAllEmployees -> daftar akun Admin / LaundryStaff / Receptionist.
func (uc *UserController) GetAllEmployees(c *gin.Context) {
	var employees []models.User
	if err := uc.DB.Scopes(models.EmployeeList()).Find(&employees).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of employees", employees)
}

// AddEmployee -> admin menambahkan akun employee baru.
func (uc *UserController) AddEmployee(c *gin.Context) {
	type request struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
		Gender          string `json:"gender"`
		DOB             string `json:"dob"`
		Role            string `json:"role"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	in := validators.RegistrationInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Gender:          req.Gender,
		DOB:             req.DOB,
		Role:            req.Role,
	}

	role, dob, err := validators.ValidateEmployee(in, models.NewUserDirectory(uc.DB))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	employee := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Gender:   req.Gender,
		DOB:      dob,
		Role:     role,
	}

	if err := uc.DB.Create(&employee).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}

	utils.InfoLogger.Printf("New employee added: %s (role=%s)", employee.Username, employee.Role)

	utils.RespondJSON(c, http.StatusCreated, "Employee added", gin.H{
		"user_id": employee.ID,
	})
}

// GetLaundryStaff -> pool staff yang bisa dipilih receptionist saat assignment.
func (uc *UserController) GetLaundryStaff(c *gin.Context) {
	var staff []models.User
	if err := uc.DB.Scopes(models.AssignableStaff()).Find(&staff).Error; err != nil {
		utils.RespondAppError(c, utils.NewStoreError(err))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of laundry staff", staff)
}
