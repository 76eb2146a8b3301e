// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package sessionrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/yacht-charter/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/yacht-charter/pkg/core/model"
	"github.com/momeni/yacht-charter/pkg/core/usecase/sessionuc"
)

// Missing inputs are reported by the session use case with their
// user facing messages, so the binding only checks the formats.

type loginReq struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
}

func (rs *resource) DserLoginReq(c *gin.Context) (*model.SignInRequest, bool) {
	req := &loginReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil, false
	}
	return &model.SignInRequest{Email: req.Email, Password: req.Password}, true
}

type signupReq struct {
	Name         string `json:"name"`
	Email        string `json:"email" binding:"omitempty,email"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	AgreeToTerms bool   `json:"agreeToTerms"`
}

func (rs *resource) DserSignupReq(c *gin.Context) (*sessionuc.SignupForm, bool) {
	req := &signupReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil, false
	}
	return &sessionuc.SignupForm{
		SignUpRequest: model.SignUpRequest{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Password: req.Password,
		},
		AgreeToTerms: req.AgreeToTerms,
	}, true
}

type verifyReq struct {
	sessionuc.Signup
	OTP string `json:"otp"`
}

func (rs *resource) DserVerifyReq(c *gin.Context) (*verifyReq, bool) {
	req := &verifyReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil, false
	}
	return req, true
}

type resendReq struct {
	Email string `json:"email" binding:"omitempty,email"`
}

func (rs *resource) DserResendReq(c *gin.Context) (*resendReq, bool) {
	req := &resendReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil, false
	}
	return req, true
}
