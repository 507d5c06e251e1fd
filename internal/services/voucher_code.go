package services

import (
	"errors"
	"fmt"
	"time"

	"airline/internal/domain"
	"airline/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

const voucherIssuer = "airline-vouchers"

// VoucherClaims is what a voucher verification code vouches for.
type VoucherClaims struct {
	PNR           string `json:"pnr"`
	ReservationID int64  `json:"rid"`
	jwt.RegisteredClaims
}

// IssueVoucherCode signs the reservation identity with HS256.
func IssueVoucherCode(secret []byte, d models.ReservationDetail, now time.Time) (string, error) {
	if len(secret) == 0 {
		return "", domain.InternalError{Msg: "secreto de voucher no configurado"}
	}
	claims := VoucherClaims{
		PNR:           d.Reservation.Code,
		ReservationID: d.Reservation.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   voucherIssuer,
			Subject:  d.Reservation.Code,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyVoucherCode checks signature and issuer and returns the claims.
func VerifyVoucherCode(secret []byte, code string) (VoucherClaims, error) {
	var claims VoucherClaims
	if len(secret) == 0 {
		return claims, domain.InternalError{Msg: "secreto de voucher no configurado"}
	}
	if code == "" {
		return claims, domain.ValidationError{Field: "codigo", Msg: "requerido"}
	}

	_, err := jwt.ParseWithClaims(code, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metodo de firma inesperado: %v", t.Header["alg"])
		}
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(voucherIssuer),
	)
	if err != nil {
		return VoucherClaims{}, domain.ValidationError{Field: "codigo", Msg: "codigo de verificacion invalido", Err: err}
	}
	if claims.PNR == "" || claims.ReservationID <= 0 {
		return VoucherClaims{}, domain.ValidationError{Field: "codigo", Msg: "codigo de verificacion invalido", Err: errors.New("claims incompletos")}
	}
	return claims, nil
}
