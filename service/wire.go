package service

import (
	"Chirp/dao"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Bind(new(UserStore), new(*dao.Users)),
	wire.Bind(new(FollowStore), new(*dao.FollowDAO)),
	wire.Bind(new(PostStore), new(*dao.PostDAO)),
	wire.Bind(new(LikeStore), new(*dao.LikeDAO)),
	wire.Bind(new(CommentStore), new(*dao.Comment)),

	wire.Struct(new(IdentifierResolver), "*"),
	wire.Struct(new(Annotator), "*"),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),
)
