package domain

// AccessTokenType is the "type" claim carried by every access token.
const AccessTokenType = "access_token"

// TokenTypeBearer is the OAuth2 token_type returned by the login endpoint.
const TokenTypeBearer = "bearer"
