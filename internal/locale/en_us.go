package locale

var enUS = map[string]string{
	// index / session
	"success-indexApi-1000": "Login success",
	"error-indexApi-1000":   "Username or password is invalid",
	"error-indexApi-1001":   "Login processing failed",

	// auth middleware
	"error-authMiddleware-1000": "Access token is invalid",
	"error-authMiddleware-1001": "Access token verify failed",
	"error-authMiddleware-1002": "Authentication processing failed",

	// parameter validation
	"error-dataMiddleware-1000": "Validate unknown request path",
	"error-dataMiddleware-1001": "Request parameters are invalid",

	// article
	"success-articleApi-1000": "Create article success",
	"success-articleApi-1001": "Get articles success",
	"success-articleApi-1002": "Get single article success",
	"success-articleApi-1003": "Update article success",
	"success-articleApi-1004": "Update article tags success",
	"success-articleApi-1005": "Publish articles success",
	"success-articleApi-1006": "Delete article success",
	"error-articleApi-1000":   "Article url already been used",
	"error-articleApi-1001":   "Create article processing failed",
	"error-articleApi-1002":   "Get articles processing failed",
	"error-articleApi-1003":   "Article is not existed",
	"error-articleApi-1004":   "Get single article processing failed",
	"error-articleApi-1005":   "Update article without any parameters",
	"error-articleApi-1006":   "Update article processing failed",
	"error-articleApi-1007":   "Update article tags processing failed",
	"error-articleApi-1008":   "Publish articles processing failed",
	"error-articleApi-1009":   "Delete article processing failed",

	// tag
	"success-tagApi-1000": "Create tags success",
	"success-tagApi-1001": "Get tags success",
	"success-tagApi-1002": "Get single tag success",
	"success-tagApi-1003": "Update tag success",
	"success-tagApi-1004": "Delete tag success",
	"error-tagApi-1000":   "Create tags with empty names",
	"error-tagApi-1001":   "Create tags processing failed",
	"error-tagApi-1002":   "Get tags processing failed",
	"error-tagApi-1003":   "Tag is not existed",
	"error-tagApi-1004":   "Get single tag processing failed",
	"error-tagApi-1005":   "Update tag with invalid name",
	"error-tagApi-1006":   "Update tag processing failed",
	"error-tagApi-1007":   "Delete tag processing failed",

	// comment
	"success-commentApi-1000": "Create comment success",
	"success-commentApi-1001": "Get comments success",
	"success-commentApi-1002": "Update comment success",
	"success-commentApi-1003": "Delete comment success",
	"error-commentApi-1000":   "Create comment processing failed",
	"error-commentApi-1001":   "Get comments processing failed",
	"error-commentApi-1002":   "Comment is not existed",
	"error-commentApi-1003":   "Update comment processing failed",
	"error-commentApi-1004":   "Delete comment processing failed",

	// model layer coded errors
	"error-articleModel-1000": "Article model create with empty options",
	"error-articleModel-1001": "Article model find with nil queries",
	"error-tagModel-1000":     "Tag model create with empty name",
	"error-tagModel-1001":     "Tag model find with nil queries",
	"error-commentModel-1000": "Comment model create with empty options",
	"error-commentModel-1001": "Comment model find with nil queries",
	"error-sessionModel-1000": "Session model create with empty options",
	"error-sessionModel-1001": "Session model find with nil queries",

	// credential verifier coded errors
	"error-authController-1000": "Verify password with empty value",
}
