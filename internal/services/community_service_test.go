package services

import (
	"errors"
	"testing"
	"time"

	"github.com/jaehyuncho/fitdiary/internal/models"
)

func TestCreatePost(t *testing.T) {
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	author := models.Profile{ID: "p1", Name: "민수", ProfileImage: "uploads/me.jpg"}

	t.Run("captures the author snapshot", func(t *testing.T) {
		posts := newFakePostStore()
		service := NewCommunityService(posts)

		post, err := service.CreatePost(author, " 오운완 ", " 오늘도 해냈다 ", now)
		if err != nil {
			t.Fatalf("CreatePost: %v", err)
		}
		if post.Title != "오운완" || post.Content != "오늘도 해냈다" {
			t.Fatalf("post = %q / %q, want trimmed fields", post.Title, post.Content)
		}
		if post.AuthorName != "민수" || post.AuthorImage != "uploads/me.jpg" {
			t.Fatalf("author snapshot = %q %q", post.AuthorName, post.AuthorImage)
		}
		if post.Likes == nil || post.Comments == nil {
			t.Fatal("likes and comments should start as empty slices")
		}
	})

	t.Run("rejects blank title or content", func(t *testing.T) {
		service := NewCommunityService(newFakePostStore())

		if _, err := service.CreatePost(author, " ", "내용", now); !errors.Is(err, ErrEmptyPostTitle) {
			t.Fatalf("err = %v, want ErrEmptyPostTitle", err)
		}
		if _, err := service.CreatePost(author, "제목", " ", now); !errors.Is(err, ErrEmptyPostContent) {
			t.Fatalf("err = %v, want ErrEmptyPostContent", err)
		}
	})
}

func TestEditAndDeletePost(t *testing.T) {
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	author := models.Profile{ID: "p1", Name: "민수"}

	setup := func(t *testing.T) (*CommunityService, *fakePostStore, models.Post) {
		t.Helper()
		posts := newFakePostStore()
		service := NewCommunityService(posts)
		post, err := service.CreatePost(author, "제목", "내용", now)
		if err != nil {
			t.Fatalf("CreatePost: %v", err)
		}
		return service, posts, post
	}

	t.Run("only the author may edit", func(t *testing.T) {
		service, _, post := setup(t)

		if _, err := service.EditPost(post.ID, "p2", "바뀐 제목", "바뀐 내용"); !errors.Is(err, ErrNotPostAuthor) {
			t.Fatalf("err = %v, want ErrNotPostAuthor", err)
		}
		edited, err := service.EditPost(post.ID, "p1", "바뀐 제목", "바뀐 내용")
		if err != nil {
			t.Fatalf("EditPost: %v", err)
		}
		if edited.Title != "바뀐 제목" {
			t.Fatalf("title = %q", edited.Title)
		}
	})

	t.Run("only the author may delete", func(t *testing.T) {
		service, posts, post := setup(t)

		if err := service.DeletePost(post.ID, "p2"); !errors.Is(err, ErrNotPostAuthor) {
			t.Fatalf("err = %v, want ErrNotPostAuthor", err)
		}
		if err := service.DeletePost(post.ID, "p1"); err != nil {
			t.Fatalf("DeletePost: %v", err)
		}
		if _, err := posts.FindByID(post.ID); err == nil {
			t.Fatal("post still present after delete")
		}
	})
}

func TestToggleLike(t *testing.T) {
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	service := NewCommunityService(newFakePostStore())

	post, err := service.CreatePost(models.Profile{ID: "p1", Name: "민수"}, "제목", "내용", now)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	liked, likedNow, err := service.ToggleLike(post.ID, "p2")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !likedNow || len(liked.Likes) != 1 {
		t.Fatalf("after first toggle: liked=%v likes=%v", likedNow, liked.Likes)
	}

	unliked, likedNow, err := service.ToggleLike(post.ID, "p2")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if likedNow || len(unliked.Likes) != 0 {
		t.Fatalf("after second toggle: liked=%v likes=%v", likedNow, unliked.Likes)
	}
}

func TestAddComment(t *testing.T) {
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	service := NewCommunityService(newFakePostStore())

	post, err := service.CreatePost(models.Profile{ID: "p1", Name: "민수"}, "제목", "내용", now)
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if _, err := service.AddComment(post.ID, models.Profile{ID: "p2", Name: "영희"}, "  ", now); !errors.Is(err, ErrEmptyComment) {
		t.Fatalf("err = %v, want ErrEmptyComment", err)
	}

	commented, err := service.AddComment(post.ID, models.Profile{ID: "p2", Name: "영희"}, "화이팅!", now.Add(time.Minute))
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if len(commented.Comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(commented.Comments))
	}
	comment := commented.Comments[0]
	if comment.AuthorName != "영희" || comment.Content != "화이팅!" {
		t.Fatalf("comment = %+v", comment)
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	service := NewCommunityService(newFakePostStore())
	author := models.Profile{ID: "p1", Name: "민수"}

	for hour, title := range []string{"첫 글", "둘째 글", "셋째 글"} {
		if _, err := service.CreatePost(author, title, "내용", now.Add(time.Duration(hour)*time.Hour)); err != nil {
			t.Fatalf("CreatePost %q: %v", title, err)
		}
	}

	posts, err := service.ListPosts()
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 3 || posts[0].Title != "셋째 글" || posts[2].Title != "첫 글" {
		t.Fatalf("order = %v", []string{posts[0].Title, posts[1].Title, posts[2].Title})
	}
}
