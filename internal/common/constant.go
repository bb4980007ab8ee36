package common

// TokenCookieName is the cookie that carries the opaque session token on
// every authenticated request.
const TokenCookieName = "token"
