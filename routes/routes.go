package routes

import (
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/sonikrishna9/Tenda-admin/db"
	"github.com/sonikrishna9/Tenda-admin/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

// UploadsDir is where media files land; tests point it at a temp dir.
var UploadsDir = "./uploads"

const (
	maxImageBytes = 5 * 1024 * 1024
	maxVideoBytes = 100 * 1024 * 1024
	maxMediaCount = 10 // videos and feature pictures per product
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Connected clients map with mutex for thread safety
var clients = make(map[*websocket.Conn]bool)
var broadcast = make(chan []byte, 100) // Buffered channel to prevent blocking
var mutex = &sync.Mutex{}
var validate = validator.New()

type catalogEvent struct {
	Event string    `json:"event"`
	ID    uint      `json:"id"`
	At    time.Time `json:"at"`
}

func broadcastEvent(event string, id uint) {
	data, err := json.Marshal(catalogEvent{Event: event, ID: id, At: time.Now()})
	if err != nil {
		return
	}
	select {
	case broadcast <- data:
	default:
		log.Println("Event channel full, dropping:", event)
	}
}

func SetupRoutes(app *fiber.App) {

	wsHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		mutex.Lock()
		clients[conn] = true
		mutex.Unlock()
		log.Println("Client connected:", conn.RemoteAddr())

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				mutex.Lock()
				delete(clients, conn)
				mutex.Unlock()
				break
			}
		}
	})

	app.Get("/ws", wsHandler)
	go handleBroadcasts()

	// Product routes
	app.Post("/api/product/createproduct", createProduct)
	app.Get("/api/product/allproducts", getAllProducts)
	app.Get("/api/product/details/:id", getProduct)
	app.Put("/api/product/update/:id", updateProduct)
	app.Delete("/api/product/delete/:id", deleteProduct)

	// Parent category routes
	app.Get("/api/parentcategory/getall", getAllParentCategories)
	app.Post("/api/parentcategory/create", createParentCategory)
	app.Put("/api/parentcategory/update/:id", updateParentCategory)
	app.Put("/api/parentcategory/:id/toggle-status", toggleParentCategoryStatus)
	app.Delete("/api/parentcategory/:id", deleteParentCategory)

	// Blog routes
	app.Post("/api/blog/", createBlog)
	app.Get("/api/blog/get-all", getAllBlogs)
	app.Get("/api/blog/slug/:slug", getBlogBySlug)
	app.Put("/api/blog/:id", updateBlog)
	app.Delete("/api/blog/:id", deleteBlog)

	// Slider routes
	app.Get("/api/admin/slider/all", getAllSliders)
	app.Post("/api/admin/slider/:slug", createSlider)
	app.Put("/api/admin/slider/:slug", updateSlider)
	app.Delete("/api/admin/slider/:slug", deleteSlider)
}

func handleBroadcasts() {
	for message := range broadcast {
		mutex.Lock()
		for conn := range clients {
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Println("WebSocket write error:", err)
				conn.Close()
				delete(clients, conn)
			}
		}
		mutex.Unlock()
	}
}

/* ---------------- MULTIPART HELPERS ---------------- */

func formValue(form *multipart.Form, name string) string {
	vals := form.Value[name]
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func hasFormValue(form *multipart.Form, name string) bool {
	return len(form.Value[name]) > 0
}

func jsonField(form *multipart.Form, name string, v any) error {
	vals := form.Value[name]
	if len(vals) == 0 || vals[0] == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(vals[0]), v); err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	return nil
}

func checkUpload(fh *multipart.FileHeader, prefix string, maxBytes int64) error {
	contentType := fh.Header.Get("Content-Type")
	if prefix != "" && !strings.HasPrefix(contentType, prefix) {
		return fmt.Errorf("%s has unsupported type %s", fh.Filename, contentType)
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return fmt.Errorf("%s exceeds the %dMB limit", fh.Filename, maxBytes/(1024*1024))
	}
	return nil
}

func saveUpload(c *fiber.Ctx, fh *multipart.FileHeader) (models.MediaRef, error) {
	ext := filepath.Ext(fh.Filename)
	publicID := uuid.New().String()
	filename := publicID + ext
	dst := filepath.Join(UploadsDir, filename)

	if err := c.SaveFile(fh, dst); err != nil {
		return models.MediaRef{}, err
	}
	return models.MediaRef{URL: "/uploads/" + filename, PublicID: publicID}, nil
}

func saveImageUpload(c *fiber.Ctx, fh *multipart.FileHeader) (models.MediaRef, error) {
	ref, err := saveUpload(c, fh)
	if err != nil {
		return models.MediaRef{}, err
	}
	makeThumbnail(filepath.Base(ref.URL))
	return ref, nil
}

// removeStoredFile deletes the file behind an /uploads URL, best effort.
func removeStoredFile(url string) {
	name := strings.TrimPrefix(url, "/uploads/")
	if name == "" || name == url {
		return
	}
	os.Remove(filepath.Join(UploadsDir, name))
	os.Remove(filepath.Join(UploadsDir, "thumbs", name))
}

func saveFiles(c *fiber.Ctx, fhs []*multipart.FileHeader, prefix string, maxBytes int64, image bool) ([]models.MediaRef, error) {
	refs := make([]models.MediaRef, 0, len(fhs))
	for _, fh := range fhs {
		if err := checkUpload(fh, prefix, maxBytes); err != nil {
			return nil, err
		}
	}
	for _, fh := range fhs {
		var ref models.MediaRef
		var err error
		if image {
			ref, err = saveImageUpload(c, fh)
		} else {
			ref, err = saveUpload(c, fh)
		}
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

/* ---------------- PRODUCT HANDLERS ---------------- */

func createProduct(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse multipart form",
		})
	}

	product := models.Product{
		Title:          formValue(form, "title"),
		Subtitle:       formValue(form, "subtitle"),
		Description:    formValue(form, "description"),
		ParentCategory: formValue(form, "parentCategory"),
		SubCategory:    formValue(form, "subCategory"),
		Status:         formValue(form, "status"),
		Featured:       formValue(form, "featured") == "true",
	}
	if product.Status == "" {
		product.Status = "active"
	}
	if err := jsonField(form, "uspPoints", &product.USPPoints); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := jsonField(form, "parameters", &product.Parameters); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title, description and parent category are required",
		})
	}

	if product.Images, err = saveFiles(c, form.File["images"], "image/", maxImageBytes, true); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(form.File["videos"]) > maxMediaCount {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Maximum %d videos allowed", maxMediaCount),
		})
	}
	if product.Videos, err = saveFiles(c, form.File["videos"], "video/", maxVideoBytes, false); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(form.File["featurePictures"]) > maxMediaCount {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Maximum %d feature pictures allowed", maxMediaCount),
		})
	}
	if product.FeaturePictures, err = saveFiles(c, form.File["featurePictures"], "image/", maxImageBytes, true); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	quickstart, err := saveFiles(c, form.File["quickstartpdfs"], "application/pdf", 0, false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	download, err := saveFiles(c, form.File["downloadpdfs"], "application/pdf", 0, false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	product.PDF = models.ProductPDFs{
		Quickstartpdfs: refsToPDFs(quickstart),
		Downloadpdfs:   refsToPDFs(download),
	}

	if err := db.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}

	broadcastEvent("product.created", product.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Product created successfully",
		"product": product,
	})
}

func refsToPDFs(refs []models.MediaRef) []models.PDFDoc {
	docs := make([]models.PDFDoc, 0, len(refs))
	for _, r := range refs {
		docs = append(docs, models.PDFDoc{URL: r.URL})
	}
	return docs
}

func getAllProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := db.DB.Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get products",
		})
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"products": products,
		"total":    len(products),
	})
}

func getProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get product",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"product": product,
	})
}

func updateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find product",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse multipart form",
		})
	}

	if hasFormValue(form, "title") {
		product.Title = formValue(form, "title")
	}
	if hasFormValue(form, "subtitle") {
		product.Subtitle = formValue(form, "subtitle")
	}
	if hasFormValue(form, "description") {
		product.Description = formValue(form, "description")
	}
	if hasFormValue(form, "parentCategory") {
		product.ParentCategory = formValue(form, "parentCategory")
	}
	if hasFormValue(form, "subCategory") {
		product.SubCategory = formValue(form, "subCategory")
	}
	if hasFormValue(form, "status") {
		product.Status = formValue(form, "status")
	}
	if hasFormValue(form, "featured") {
		product.Featured = formValue(form, "featured") == "true"
	}
	if err := jsonField(form, "uspPoints", &product.USPPoints); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := jsonField(form, "parameters", &product.Parameters); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title, description and parent category are required",
		})
	}

	// Staged removals
	var removeImages, removeVideos, removeFeaturePictures []string
	var removeQuickstart, removeDownload []int
	if err := jsonField(form, "removeImages", &removeImages); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := jsonField(form, "removeVideos", &removeVideos); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := jsonField(form, "removeFeaturePictures", &removeFeaturePictures); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := jsonField(form, "removeQuickstartIndices", &removeQuickstart); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := jsonField(form, "removeDownloadIndices", &removeDownload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product.Images = dropRefs(product.Images, removeImages)
	product.Videos = dropRefs(product.Videos, removeVideos)
	product.FeaturePictures = dropRefs(product.FeaturePictures, removeFeaturePictures)
	product.PDF.Quickstartpdfs = dropPDFs(product.PDF.Quickstartpdfs, removeQuickstart)
	product.PDF.Downloadpdfs = dropPDFs(product.PDF.Downloadpdfs, removeDownload)

	if len(product.Videos)+len(form.File["videos"]) > maxMediaCount {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Maximum %d videos allowed", maxMediaCount),
		})
	}
	if len(product.FeaturePictures)+len(form.File["featurePictures"]) > maxMediaCount {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Maximum %d feature pictures allowed", maxMediaCount),
		})
	}

	newImages, err := saveFiles(c, form.File["images"], "image/", maxImageBytes, true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	newVideos, err := saveFiles(c, form.File["videos"], "video/", maxVideoBytes, false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	newFeatures, err := saveFiles(c, form.File["featurePictures"], "image/", maxImageBytes, true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	newQuickstart, err := saveFiles(c, form.File["quickstartpdfs"], "application/pdf", 0, false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	newDownload, err := saveFiles(c, form.File["downloadpdfs"], "application/pdf", 0, false)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product.Images = append(product.Images, newImages...)
	product.Videos = append(product.Videos, newVideos...)
	product.FeaturePictures = append(product.FeaturePictures, newFeatures...)
	product.PDF.Quickstartpdfs = append(product.PDF.Quickstartpdfs, refsToPDFs(newQuickstart)...)
	product.PDF.Downloadpdfs = append(product.PDF.Downloadpdfs, refsToPDFs(newDownload)...)

	if err := db.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}

	broadcastEvent("product.updated", product.ID)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product updated successfully",
		"product": product,
	})
}

// dropRefs removes refs whose public_id is marked and deletes their files.
func dropRefs(refs []models.MediaRef, remove []string) []models.MediaRef {
	if len(remove) == 0 {
		return refs
	}
	marked := make(map[string]bool, len(remove))
	for _, id := range remove {
		marked[id] = true
	}
	kept := make([]models.MediaRef, 0, len(refs))
	for _, r := range refs {
		if marked[r.PublicID] {
			removeStoredFile(r.URL)
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// dropPDFs removes docs by their position in the stored list.
func dropPDFs(docs []models.PDFDoc, remove []int) []models.PDFDoc {
	if len(remove) == 0 {
		return docs
	}
	marked := make(map[int]bool, len(remove))
	for _, i := range remove {
		marked[i] = true
	}
	kept := make([]models.PDFDoc, 0, len(docs))
	for i, doc := range docs {
		if marked[i] {
			removeStoredFile(doc.URL)
			continue
		}
		kept = append(kept, doc)
	}
	return kept
}

// DeleteProduct
func deleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find product",
		})
	}

	for _, r := range product.Images {
		removeStoredFile(r.URL)
	}
	for _, r := range product.Videos {
		removeStoredFile(r.URL)
	}
	for _, r := range product.FeaturePictures {
		removeStoredFile(r.URL)
	}
	for _, doc := range product.PDF.Quickstartpdfs {
		removeStoredFile(doc.URL)
	}
	for _, doc := range product.PDF.Downloadpdfs {
		removeStoredFile(doc.URL)
	}

	if err := db.DB.Delete(&models.Product{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}

	broadcastEvent("product.deleted", product.ID)
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Product deleted successfully",
	})
}

/* ---------------- PARENT CATEGORY HANDLERS ---------------- */

func getAllParentCategories(c *fiber.Ctx) error {
	var categories []models.ParentCategory
	if err := db.DB.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get categories",
		})
	}
	return c.JSON(fiber.Map{
		"success":        true,
		"parentcategory": categories,
	})
}

func createParentCategory(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse multipart form",
		})
	}

	category := models.ParentCategory{
		Name:   formValue(form, "categoryname"),
		Status: "active",
	}
	if err := validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category name is required",
		})
	}

	files := form.File["images"]
	if len(files) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image is required",
		})
	}
	if err := checkUpload(files[0], "image/", maxImageBytes); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	ref, err := saveImageUpload(c, files[0])
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save image",
		})
	}
	category.Image = ref.URL

	if err := db.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":        true,
		"message":        "Category created successfully",
		"parentcategory": category,
	})
}

func updateParentCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.ParentCategory
	if err := db.DB.First(&category, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find category",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse multipart form",
		})
	}

	if hasFormValue(form, "categoryname") {
		category.Name = formValue(form, "categoryname")
	}
	if err := validate.Struct(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category name is required",
		})
	}

	if files := form.File["images"]; len(files) > 0 {
		if err := checkUpload(files[0], "image/", maxImageBytes); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		ref, err := saveImageUpload(c, files[0])
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save image",
			})
		}
		removeStoredFile(category.Image)
		category.Image = ref.URL
	}

	if err := db.DB.Save(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"message":        "Category updated successfully",
		"parentcategory": category,
	})
}

func toggleParentCategoryStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.ParentCategory
	if err := db.DB.First(&category, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find category",
		})
	}

	if category.Status == "active" {
		category.Status = "inactive"
	} else {
		category.Status = "active"
	}
	if err := db.DB.Save(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update category",
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"message":        "Category status updated",
		"parentcategory": category,
	})
}

func deleteParentCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.ParentCategory
	if err := db.DB.First(&category, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find category",
		})
	}

	removeStoredFile(category.Image)
	if err := db.DB.Delete(&models.ParentCategory{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete category",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Category deleted successfully",
	})
}

/* ---------------- BLOG HANDLERS ---------------- */

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func createBlog(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse multipart form",
		})
	}

	blog := models.Blog{
		Title:    formValue(form, "title"),
		Excerpt:  formValue(form, "excerpt"),
		Content:  formValue(form, "content"),
		Category: formValue(form, "category"),
		Status:   formValue(form, "status"),
		Author:   formValue(form, "author"),
	}
	if blog.Status == "" {
		blog.Status = "draft"
	}
	if err := jsonField(form, "tags", &blog.Tags); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(blog); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	slug := slugify(formValue(form, "slug"))
	if slug == "" {
		slug = slugify(blog.Title)
	}
	var existing models.Blog
	if err := db.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		slug = slug + "-" + uuid.New().String()[:8]
	}
	blog.Slug = slug

	if files := form.File["featurePictures"]; len(files) > 0 {
		if err := checkUpload(files[0], "image/", maxImageBytes); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		ref, err := saveImageUpload(c, files[0])
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save featured image",
			})
		}
		blog.FeaturedImage = ref
	} else {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Featured image is required",
		})
	}

	if blog.Gallery, err = saveFiles(c, form.File["images"], "image/", maxImageBytes, true); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := db.DB.Create(&blog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create blog",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Blog created successfully",
		"blog":    blog,
	})
}

func getAllBlogs(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := db.DB.Model(&models.Blog{}).Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count blogs",
		})
	}

	var blogs []models.Blog
	if err := db.DB.Offset((page - 1) * limit).Limit(limit).Find(&blogs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get blogs",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"blogs":   blogs,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func getBlogBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	var blog models.Blog
	if err := db.DB.Where("slug = ?", slug).First(&blog).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Blog not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get blog",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"blog":    blog,
	})
}

func updateBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	var blog models.Blog
	if err := db.DB.First(&blog, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Blog not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find blog",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse multipart form",
		})
	}

	if hasFormValue(form, "title") {
		blog.Title = formValue(form, "title")
	}
	if hasFormValue(form, "excerpt") {
		blog.Excerpt = formValue(form, "excerpt")
	}
	if hasFormValue(form, "content") {
		blog.Content = formValue(form, "content")
	}
	if hasFormValue(form, "category") {
		blog.Category = formValue(form, "category")
	}
	if hasFormValue(form, "status") {
		blog.Status = formValue(form, "status")
	}
	if hasFormValue(form, "author") {
		blog.Author = formValue(form, "author")
	}
	if err := jsonField(form, "tags", &blog.Tags); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(blog); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	if files := form.File["featurePictures"]; len(files) > 0 {
		if err := checkUpload(files[0], "image/", maxImageBytes); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		ref, err := saveImageUpload(c, files[0])
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to save featured image",
			})
		}
		removeStoredFile(blog.FeaturedImage.URL)
		blog.FeaturedImage = ref
	}

	gallery, err := saveFiles(c, form.File["images"], "image/", maxImageBytes, true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	blog.Gallery = append(blog.Gallery, gallery...)

	if err := db.DB.Save(&blog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update blog",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Blog updated successfully",
		"blog":    blog,
	})
}

func deleteBlog(c *fiber.Ctx) error {
	id := c.Params("id")
	var blog models.Blog
	if err := db.DB.First(&blog, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Blog not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find blog",
		})
	}

	removeStoredFile(blog.FeaturedImage.URL)
	for _, r := range blog.Gallery {
		removeStoredFile(r.URL)
	}
	if err := db.DB.Delete(&models.Blog{}, id).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete blog",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Blog deleted successfully",
	})
}

/* ---------------- SLIDER HANDLERS ---------------- */

func getAllSliders(c *fiber.Ctx) error {
	var sliders []models.Slider
	if err := db.DB.Find(&sliders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get sliders",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"sliders": sliders,
	})
}

func createSlider(c *fiber.Ctx) error {
	slug := slugify(c.Params("slug"))
	if slug == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Slider slug is required",
		})
	}

	var existing models.Slider
	if err := db.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Slider already exists",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse multipart form",
		})
	}
	if len(form.File["images"]) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "At least one image is required",
		})
	}

	images, err := saveFiles(c, form.File["images"], "image/", maxImageBytes, true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slider := models.Slider{Slug: slug, Images: images}
	if err := db.DB.Create(&slider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create slider",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Slider created successfully",
		"slider":  slider,
	})
}

func updateSlider(c *fiber.Ctx) error {
	slug := c.Params("slug")
	var slider models.Slider
	if err := db.DB.Where("slug = ?", slug).First(&slider).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Slider not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find slider",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse multipart form",
		})
	}

	images, err := saveFiles(c, form.File["images"], "image/", maxImageBytes, true)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	slider.Images = append(slider.Images, images...)

	if err := db.DB.Save(&slider).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update slider",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Slider updated successfully",
		"slider":  slider,
	})
}

func deleteSlider(c *fiber.Ctx) error {
	slug := c.Params("slug")
	var slider models.Slider
	if err := db.DB.Where("slug = ?", slug).First(&slider).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Slider not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to find slider",
		})
	}

	for _, r := range slider.Images {
		removeStoredFile(r.URL)
	}
	if err := db.DB.Where("slug = ?", slug).Delete(&models.Slider{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete slider",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Slider %q deleted successfully", slug),
	})
}
