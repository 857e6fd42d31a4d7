package locale

var zhTW = map[string]string{
	// index / session
	"success-indexApi-1000": "登入成功",
	"error-indexApi-1000":   "帳號或密碼錯誤",
	"error-indexApi-1001":   "登入處理失敗",

	// auth middleware
	"error-authMiddleware-1000": "存取憑證無效",
	"error-authMiddleware-1001": "存取憑證驗證失敗",
	"error-authMiddleware-1002": "身份驗證處理失敗",

	// parameter validation
	"error-dataMiddleware-1000": "未知的驗證路徑",
	"error-dataMiddleware-1001": "請求參數格式錯誤",

	// article
	"success-articleApi-1000": "建立文章成功",
	"success-articleApi-1001": "取得文章列表成功",
	"success-articleApi-1002": "取得單一文章成功",
	"success-articleApi-1003": "更新文章成功",
	"success-articleApi-1004": "更新文章標籤成功",
	"success-articleApi-1005": "發佈文章成功",
	"success-articleApi-1006": "刪除文章成功",
	"error-articleApi-1000":   "文章網址已被使用",
	"error-articleApi-1001":   "建立文章處理失敗",
	"error-articleApi-1002":   "取得文章列表處理失敗",
	"error-articleApi-1003":   "文章不存在",
	"error-articleApi-1004":   "取得單一文章處理失敗",
	"error-articleApi-1005":   "更新文章缺少參數",
	"error-articleApi-1006":   "更新文章處理失敗",
	"error-articleApi-1007":   "更新文章標籤處理失敗",
	"error-articleApi-1008":   "發佈文章處理失敗",
	"error-articleApi-1009":   "刪除文章處理失敗",

	// tag
	"success-tagApi-1000": "建立標籤成功",
	"success-tagApi-1001": "取得標籤列表成功",
	"success-tagApi-1002": "取得單一標籤成功",
	"success-tagApi-1003": "更新標籤成功",
	"success-tagApi-1004": "刪除標籤成功",
	"error-tagApi-1000":   "建立標籤缺少名稱",
	"error-tagApi-1001":   "建立標籤處理失敗",
	"error-tagApi-1002":   "取得標籤列表處理失敗",
	"error-tagApi-1003":   "標籤不存在",
	"error-tagApi-1004":   "取得單一標籤處理失敗",
	"error-tagApi-1005":   "更新標籤名稱無效",
	"error-tagApi-1006":   "更新標籤處理失敗",
	"error-tagApi-1007":   "刪除標籤處理失敗",

	// comment
	"success-commentApi-1000": "建立留言成功",
	"success-commentApi-1001": "取得留言成功",
	"success-commentApi-1002": "更新留言成功",
	"success-commentApi-1003": "刪除留言成功",
	"error-commentApi-1000":   "建立留言處理失敗",
	"error-commentApi-1001":   "取得留言處理失敗",
	"error-commentApi-1002":   "留言不存在",
	"error-commentApi-1003":   "更新留言處理失敗",
	"error-commentApi-1004":   "刪除留言處理失敗",

	// model layer coded errors
	"error-articleModel-1000": "文章建立缺少參數",
	"error-articleModel-1001": "文章查詢條件為空",
	"error-tagModel-1000":     "標籤建立缺少名稱",
	"error-tagModel-1001":     "標籤查詢條件為空",
	"error-commentModel-1000": "留言建立缺少參數",
	"error-commentModel-1001": "留言查詢條件為空",
	"error-sessionModel-1000": "連線階段建立缺少參數",
	"error-sessionModel-1001": "連線階段查詢條件為空",

	// credential verifier coded errors
	"error-authController-1000": "驗證密碼為空",
}
