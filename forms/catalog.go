package forms

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sonikrishna9/Tenda-admin/client"
	"github.com/sonikrishna9/Tenda-admin/draft"
	"github.com/sonikrishna9/Tenda-admin/models"
)

const maxImageSize = 5 << 20

var (
	ErrNameRequired  = errors.New("name is required")
	ErrImageRequired = errors.New("image is required")
	ErrNotAnImage    = errors.New("file is not an image")
	ErrImageTooLarge = errors.New("image exceeds 5MB")
)

func checkImage(f draft.File) error {
	if !strings.HasPrefix(f.ContentType, "image/") {
		return fmt.Errorf("%w: %s", ErrNotAnImage, f.Name)
	}
	if f.Size > maxImageSize {
		return fmt.Errorf("%w: %s", ErrImageTooLarge, f.Name)
	}
	return nil
}

// CategoryAPI wraps the parent-category CRUD endpoints.
type CategoryAPI struct {
	api *client.Client
}

func NewCategoryAPI(api *client.Client) *CategoryAPI {
	return &CategoryAPI{api: api}
}

func (a *CategoryAPI) List(ctx context.Context) ([]models.ParentCategory, error) {
	res, err := a.api.Do(ctx, "GET", "api/parentcategory/getall", nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		ParentCategory []models.ParentCategory `json:"parentcategory"`
	}
	if err := res.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return payload.ParentCategory, nil
}

func (a *CategoryAPI) Create(ctx context.Context, name string, image draft.File) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if err := checkImage(image); err != nil {
		return err
	}
	sub := draft.NewSubmission()
	sub.AddField("categoryname", name)
	sub.AddFile("images", image)
	_, err := a.api.Do(ctx, "POST", "api/parentcategory/create", sub)
	return err
}

// Update changes the name and, when image is non-nil, replaces the picture.
func (a *CategoryAPI) Update(ctx context.Context, id uint, name string, image *draft.File) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	sub := draft.NewSubmission()
	sub.AddField("categoryname", name)
	if image != nil {
		if err := checkImage(*image); err != nil {
			return err
		}
		sub.AddFile("images", *image)
	}
	_, err := a.api.Do(ctx, "PUT", fmt.Sprintf("api/parentcategory/update/%d", id), sub)
	return err
}

func (a *CategoryAPI) Delete(ctx context.Context, id uint) error {
	_, err := a.api.Do(ctx, "DELETE", fmt.Sprintf("api/parentcategory/%d", id), nil)
	return err
}

func (a *CategoryAPI) ToggleStatus(ctx context.Context, id uint) error {
	_, err := a.api.Do(ctx, "PUT", fmt.Sprintf("api/parentcategory/%d/toggle-status", id), nil)
	return err
}

// maxBlogWords caps blog content length, counted after stripping markup.
const maxBlogWords = 3500

var tagRe = regexp.MustCompile(`<[^>]+>`)

var ErrBlogTooLong = fmt.Errorf("blog content exceeds %d words", maxBlogWords)

// BlogInput carries everything the blog create/update screen collects.
type BlogInput struct {
	Title         string
	Excerpt       string
	Content       string
	Category      string
	Tags          []string
	Status        string // draft | published
	Author        string
	FeaturedImage *draft.File
	Gallery       []draft.File
}

func wordCount(content string) int {
	text := strings.TrimSpace(tagRe.ReplaceAllString(content, " "))
	if text == "" {
		return 0
	}
	return len(strings.Fields(text))
}

// BlogAPI wraps the blog CRUD endpoints.
type BlogAPI struct {
	api *client.Client
}

func NewBlogAPI(api *client.Client) *BlogAPI {
	return &BlogAPI{api: api}
}

func (a *BlogAPI) List(ctx context.Context, page, limit int) ([]models.Blog, error) {
	res, err := a.api.Do(ctx, "GET", fmt.Sprintf("api/blog/get-all?page=%d&limit=%d", page, limit), nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Blogs []models.Blog `json:"blogs"`
	}
	if err := res.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode blogs: %w", err)
	}
	return payload.Blogs, nil
}

func (a *BlogAPI) GetBySlug(ctx context.Context, slug string) (*models.Blog, error) {
	res, err := a.api.Do(ctx, "GET", "api/blog/slug/"+slug, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Blog models.Blog `json:"blog"`
	}
	if err := res.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode blog %s: %w", slug, err)
	}
	return &payload.Blog, nil
}

func blogSubmission(in BlogInput) (*draft.Submission, error) {
	if wordCount(in.Content) > maxBlogWords {
		return nil, ErrBlogTooLong
	}
	sub := draft.NewSubmission()
	sub.AddField("title", in.Title)
	sub.AddField("slug", in.Title) // backend slugifies
	sub.AddField("excerpt", in.Excerpt)
	sub.AddField("content", in.Content)
	sub.AddField("category", in.Category)
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	if err := sub.AddJSONField("tags", tags); err != nil {
		return nil, err
	}
	sub.AddField("status", in.Status)
	sub.AddField("author", in.Author)
	if in.FeaturedImage != nil {
		if err := checkImage(*in.FeaturedImage); err != nil {
			return nil, err
		}
		sub.AddFile("featurePictures", *in.FeaturedImage)
	}
	for _, img := range in.Gallery {
		if err := checkImage(img); err != nil {
			return nil, err
		}
		sub.AddFile("images", img)
	}
	return sub, nil
}

func (a *BlogAPI) Create(ctx context.Context, in BlogInput) error {
	if in.FeaturedImage == nil {
		return ErrImageRequired
	}
	sub, err := blogSubmission(in)
	if err != nil {
		return err
	}
	_, err = a.api.Do(ctx, "POST", "api/blog/", sub)
	return err
}

func (a *BlogAPI) Update(ctx context.Context, id uint, in BlogInput) error {
	sub, err := blogSubmission(in)
	if err != nil {
		return err
	}
	_, err = a.api.Do(ctx, "PUT", fmt.Sprintf("api/blog/%d", id), sub)
	return err
}

func (a *BlogAPI) Delete(ctx context.Context, id uint) error {
	_, err := a.api.Do(ctx, "DELETE", fmt.Sprintf("api/blog/%d", id), nil)
	return err
}

// SliderAPI wraps the homepage slider endpoints.
type SliderAPI struct {
	api *client.Client
}

func NewSliderAPI(api *client.Client) *SliderAPI {
	return &SliderAPI{api: api}
}

func (a *SliderAPI) All(ctx context.Context) ([]models.Slider, error) {
	res, err := a.api.Do(ctx, "GET", "api/admin/slider/all", nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Sliders []models.Slider `json:"sliders"`
	}
	if err := res.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode sliders: %w", err)
	}
	return payload.Sliders, nil
}

func (a *SliderAPI) Create(ctx context.Context, slug string, images []draft.File) error {
	if strings.TrimSpace(slug) == "" {
		return ErrNameRequired
	}
	if len(images) == 0 {
		return ErrImageRequired
	}
	sub := draft.NewSubmission()
	sub.AddField("slug", slug)
	for _, img := range images {
		if err := checkImage(img); err != nil {
			return err
		}
		sub.AddFile("images", img)
	}
	_, err := a.api.Do(ctx, "POST", "api/admin/slider/"+slug, sub)
	return err
}

// Update appends new images to an existing slider.
func (a *SliderAPI) Update(ctx context.Context, slug string, images []draft.File) error {
	sub := draft.NewSubmission()
	for _, img := range images {
		if err := checkImage(img); err != nil {
			return err
		}
		sub.AddFile("images", img)
	}
	_, err := a.api.Do(ctx, "PUT", "api/admin/slider/"+slug, sub)
	return err
}

func (a *SliderAPI) Delete(ctx context.Context, slug string) error {
	_, err := a.api.Do(ctx, "DELETE", "api/admin/slider/"+slug, nil)
	return err
}
