package service

import (
	"Chirp/config"
	"Chirp/models"
	"Chirp/pkg/snowflake"
	"Chirp/types"
	"context"
	"time"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Add(ctx context.Context, userID, postID int64, req *types.CreateCommentRequest) (*types.CommentView, error)
	List(ctx context.Context, postID int64, limit, offset int) ([]types.CommentView, error)
	Delete(ctx context.Context, commentID, userID int64) error
}

type CommentService struct {
	Config    *config.Config
	Comments  CommentStore
	Posts     PostStore
	Users     UserStore
	Publisher ActivityPublisher
}

func (s *CommentService) Add(ctx context.Context, userID, postID int64, req *types.CreateCommentRequest) (*types.CommentView, error) {
	content, err := normalizeContent(req.Content)
	if err != nil {
		return nil, err
	}
	post, err := s.Posts.FindById(ctx, postID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	author, err := s.Users.FindById(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	comment := &models.Comment{
		ID:        snowflake.GenID(),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.Comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.Publisher.Publish(ctx, &types.ActivityEvent{
		Type:       types.ActivityComment,
		ActorID:    userID,
		TargetID:   post.UserID,
		PostID:     postID,
		CommentID:  comment.ID,
		OccurredAt: comment.CreatedAt,
	})

	v := types.NewCommentView(comment, author)
	return &v, nil
}

// List returns a post's comments newest first with authors joined. A zero
// limit and offset return every comment.
func (s *CommentService) List(ctx context.Context, postID int64, limit, offset int) ([]types.CommentView, error) {
	if _, err := s.Posts.FindById(ctx, postID); err != nil {
		if isNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	// without paging the whole thread is returned so it agrees with commentsCount
	page := Page{Limit: -1}
	if limit > 0 || offset > 0 {
		page = NewPage(s.Config.Feed, limit, offset)
	}
	comments, err := s.Comments.ListByPost(ctx, postID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return []types.CommentView{}, nil
	}

	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.UserID)
	}
	authors, err := s.Users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*models.Users, len(authors))
	for _, u := range authors {
		byID[u.ID] = u
	}

	views := make([]types.CommentView, 0, len(comments))
	for _, c := range comments {
		author, ok := byID[c.UserID]
		if !ok {
			continue
		}
		views = append(views, types.NewCommentView(c, author))
	}
	return views, nil
}

// Delete removes the comment when userID wrote it; otherwise ErrCommentNotFound.
func (s *CommentService) Delete(ctx context.Context, commentID, userID int64) error {
	ok, err := s.Comments.DeleteOwned(ctx, commentID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCommentNotFound
	}
	return nil
}
