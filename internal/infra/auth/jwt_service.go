package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"postboard/config"
	"postboard/internal/domain/entity"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/service"
	"postboard/internal/errors"
)

const (
	defaultAccessTTL       = 30 * time.Minute
	defaultConfirmationTTL = 60 * time.Minute

	claimSubject = "sub"
	claimExpiry  = "exp"
	claimType    = "type"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret          []byte
	method          jwt.SigningMethod
	accessTTL       time.Duration
	confirmationTTL time.Duration
	parser          *jwt.Parser
	now             func() time.Time
}

// NewJWTService is the constructor for jwtService.
// Only HMAC algorithms are accepted; zero or negative TTLs use the defaults.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("jwt secret key must be provided")
	}

	algorithm := cfg.JWT.Algorithm
	if algorithm == "" {
		algorithm = jwt.SigningMethodHS256.Alg()
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm %q", algorithm)
	}

	return &jwtService{
		secret:          []byte(cfg.JWT.SecretKey),
		method:          method,
		accessTTL:       ttlOrDefault(cfg.JWT.AccessTokenExpireMinutes, defaultAccessTTL),
		confirmationTTL: ttlOrDefault(cfg.JWT.ConfirmTokenExpireMinutes, defaultConfirmationTTL),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{method.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(now),
		),
		now: now,
	}, nil
}

func ttlOrDefault(minutes int, fallback time.Duration) time.Duration {
	if minutes <= 0 {
		return fallback
	}

	return time.Duration(minutes) * time.Minute
}

// Issue signs a token of the given kind for subject.
func (s *jwtService) Issue(subject string, kind entity.TokenKind) (string, error) {
	var ttl time.Duration
	switch kind {
	case entity.TokenKindAccess:
		ttl = s.accessTTL
	case entity.TokenKindConfirmation:
		ttl = s.confirmationTTL
	default:
		return "", errors.Errorf("unknown token kind %q", kind)
	}

	claims := jwt.MapClaims{
		claimSubject: subject,
		claimExpiry:  s.now().UTC().Add(ttl).Unix(),
		claimType:    string(kind),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Validate parses the token and returns its subject.
func (s *jwtService) Validate(tokenString string, expected entity.TokenKind) (string, error) {
	claims := jwt.MapClaims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errors.WithStack(domainerrors.ErrTokenExpired)
		}

		return "", errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}
	if subject == "" {
		return "", errors.WithStack(domainerrors.ErrTokenMissingSubject)
	}

	if kind, _ := claims[claimType].(string); kind != string(expected) {
		return "", errors.WithStack(
			domainerrors.ErrTokenKindMismatch.WithMessage("Token has incorrect type, expected '%s'", expected),
		)
	}

	return subject, nil
}
