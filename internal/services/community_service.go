package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jaehyuncho/fitdiary/internal/models"
)

var (
	ErrEmptyPostTitle   = errors.New("empty post title")
	ErrEmptyPostContent = errors.New("empty post content")
	ErrEmptyComment     = errors.New("empty comment")
	ErrNotPostAuthor    = errors.New("not the post author")
)

type PostStore interface {
	ListNewestFirst() ([]models.Post, error)
	FindByID(postID string) (models.Post, error)
	Create(post *models.Post) error
	Save(post *models.Post) error
	Delete(postID string) error
}

type CommunityService struct {
	posts PostStore
}

func NewCommunityService(posts PostStore) *CommunityService {
	return &CommunityService{posts: posts}
}

func (service *CommunityService) ListPosts() ([]models.Post, error) {
	return service.posts.ListNewestFirst()
}

func (service *CommunityService) FindPost(postID string) (models.Post, error) {
	return service.posts.FindByID(postID)
}

func (service *CommunityService) CreatePost(author models.Profile, title string, content string, now time.Time) (models.Post, error) {
	if strings.TrimSpace(title) == "" {
		return models.Post{}, ErrEmptyPostTitle
	}
	if strings.TrimSpace(content) == "" {
		return models.Post{}, ErrEmptyPostContent
	}

	post := models.Post{
		ID:          uuid.NewString(),
		AuthorID:    author.ID,
		AuthorName:  author.Name,
		AuthorImage: author.ProfileImage,
		Title:       strings.TrimSpace(title),
		Content:     strings.TrimSpace(content),
		CreatedAt:   now,
		Likes:       []string{},
		Comments:    []models.PostComment{},
	}
	if err := service.posts.Create(&post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// EditPost lets only the author change title and content.
func (service *CommunityService) EditPost(postID string, editorID string, title string, content string) (models.Post, error) {
	post, err := service.posts.FindByID(postID)
	if err != nil {
		return models.Post{}, err
	}
	if post.AuthorID != editorID {
		return models.Post{}, ErrNotPostAuthor
	}
	if strings.TrimSpace(title) == "" {
		return models.Post{}, ErrEmptyPostTitle
	}
	if strings.TrimSpace(content) == "" {
		return models.Post{}, ErrEmptyPostContent
	}

	post.Title = strings.TrimSpace(title)
	post.Content = strings.TrimSpace(content)
	if err := service.posts.Save(&post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

func (service *CommunityService) DeletePost(postID string, editorID string) error {
	post, err := service.posts.FindByID(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != editorID {
		return ErrNotPostAuthor
	}
	return service.posts.Delete(postID)
}

// ToggleLike flips the profile's like on a post and reports the new
// state.
func (service *CommunityService) ToggleLike(postID string, profileID string) (models.Post, bool, error) {
	post, err := service.posts.FindByID(postID)
	if err != nil {
		return models.Post{}, false, err
	}

	liked := false
	if post.LikedBy(profileID) {
		filtered := make([]string, 0, len(post.Likes))
		for _, liker := range post.Likes {
			if liker != profileID {
				filtered = append(filtered, liker)
			}
		}
		post.Likes = filtered
	} else {
		post.Likes = append(post.Likes, profileID)
		liked = true
	}

	if err := service.posts.Save(&post); err != nil {
		return models.Post{}, false, err
	}
	return post, liked, nil
}

func (service *CommunityService) AddComment(postID string, author models.Profile, content string, now time.Time) (models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return models.Post{}, ErrEmptyComment
	}

	post, err := service.posts.FindByID(postID)
	if err != nil {
		return models.Post{}, err
	}

	post.Comments = append(post.Comments, models.PostComment{
		ID:          uuid.NewString(),
		AuthorID:    author.ID,
		AuthorName:  author.Name,
		AuthorImage: author.ProfileImage,
		Content:     strings.TrimSpace(content),
		CreatedAt:   now,
	})
	if err := service.posts.Save(&post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}
