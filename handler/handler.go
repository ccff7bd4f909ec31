package handler

import (
	"Bookgram/config"
	"Bookgram/pkg/errs"
	"Bookgram/pkg/response"
	"Bookgram/types"
	"errors"
	"net/http"
)

const (
	MsgReferenceNotFound = "referenced user, book or gram does not exist"
	MsgAlreadyExists     = "already exists"
	MsgNotFoundOrDenied  = "record not found or not owned by the user"
	MsgUnauthorized      = "unauthorized"
	MsgInUse             = "record is still referenced and cannot be deleted"
)

// fail 把领域错误翻译为带状态码的 BizError，其余错误原样返回由 Wrap 记录并返回 500
func fail(err error) error {
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return response.NewError(http.StatusUnauthorized, MsgUnauthorized, response.WithError(err.Error()))
	case errors.Is(err, errs.ErrReferenceNotFound):
		return response.NewError(http.StatusBadRequest, MsgReferenceNotFound, response.WithError(err.Error()))
	case errors.Is(err, errs.ErrAlreadyExists):
		return response.NewError(http.StatusBadRequest, MsgAlreadyExists, response.WithError(err.Error()))
	case errors.Is(err, errs.ErrNotFoundOrUnauthorized):
		return response.NewError(http.StatusBadRequest, MsgNotFoundOrDenied, response.WithError(err.Error()))
	case errors.Is(err, errs.ErrInUse):
		return response.NewError(http.StatusBadRequest, MsgInUse, response.WithError(err.Error()))
	}
	return err
}

func notFound(msg string) error {
	return response.NewError(http.StatusNotFound, msg)
}

func page(conf *config.Config, limit, offset string) types.Page {
	if conf.Pagination == nil {
		return types.ParsePage(limit, offset, 0, 0)
	}
	return types.ParsePage(limit, offset, conf.Pagination.DefaultLimit, conf.Pagination.MaxLimit)
}
