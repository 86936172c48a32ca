package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"strings"
	"time"

	bookingpb "github.com/RentLinkDrive/RentLinkDrive/internal/api/proto/booking"
	statspb "github.com/RentLinkDrive/RentLinkDrive/internal/api/proto/stats"
	userpb "github.com/RentLinkDrive/RentLinkDrive/internal/api/proto/user"
	vehiclepb "github.com/RentLinkDrive/RentLinkDrive/internal/api/proto/vehicle"
	"github.com/RentLinkDrive/RentLinkDrive/internal/common/middleware"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// api-gateway：对外 HTTP 入口。
// 职责：路由 + 限流 + 熔断 + 把 HTTP 请求翻译为后端 gRPC 调用。
// 鉴权在各后端服务的拦截器完成，网关只透传 Authorization 头。
var (
	listenAddr  = flag.String("listen", ":8080", "HTTP listen address")
	userAddr    = flag.String("user-addr", "localhost:50051", "user-service gRPC address")
	vehicleAddr = flag.String("vehicle-addr", "localhost:50052", "vehicle-service gRPC address")
	bookingAddr = flag.String("booking-addr", "localhost:50053", "booking-service gRPC address")
)

type gateway struct {
	users    userpb.UserServiceClient
	vehicles vehiclepb.VehicleServiceClient
	bookings bookingpb.BookingServiceClient
	stats    statspb.StatsServiceClient

	userCB    *middleware.CircuitBreaker
	vehicleCB *middleware.CircuitBreaker
	bookingCB *middleware.CircuitBreaker
}

func main() {
	flag.Parse()

	userConn := mustDial(*userAddr)
	vehicleConn := mustDial(*vehicleAddr)
	bookingConn := mustDial(*bookingAddr)

	gw := &gateway{
		users:     userpb.NewUserServiceClient(userConn),
		vehicles:  vehiclepb.NewVehicleServiceClient(vehicleConn),
		bookings:  bookingpb.NewBookingServiceClient(bookingConn),
		stats:     statspb.NewStatsServiceClient(bookingConn),
		userCB:    middleware.NewCircuitBreaker("user-service", 5, 10*time.Second),
		vehicleCB: middleware.NewCircuitBreaker("vehicle-service", 5, 10*time.Second),
		bookingCB: middleware.NewCircuitBreaker("booking-service", 5, 10*time.Second),
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(rateLimit(middleware.NewTokenBucket(200, 100)))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/users/register", gw.registerUser)
		v1.POST("/users/login", gw.login)
		v1.GET("/users/me", gw.profile)
		v1.POST("/users/:id/owner-upgrade", gw.requestOwnerUpgrade)
		v1.POST("/users/:id/owner-upgrade/approve", gw.approveOwnerUpgrade)

		v1.GET("/vehicles", gw.listVehicles)
		v1.GET("/vehicles/:id", gw.getVehicle)
		v1.POST("/vehicles", gw.upsertVehicle)

		v1.POST("/bookings", gw.createBooking)
		v1.GET("/bookings", gw.listBookings)
		v1.GET("/bookings/:id", gw.getBooking)
		v1.POST("/bookings/:id/pay", gw.confirmPayment)
		v1.POST("/bookings/:id/cancel", gw.cancelBooking)
		v1.GET("/availability", gw.checkAvailability)

		v1.GET("/stats/owner", gw.ownerStats)
		v1.GET("/stats/admin", gw.adminStats)
	}

	fmt.Printf("api-gateway listening on %s\n", *listenAddr)
	if err := r.Run(*listenAddr); err != nil {
		panic(err)
	}
}

func mustDial(addr string) *grpc.ClientConn {
	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("failed to dial %s: %v", addr, err))
	}
	return conn
}

// rateLimit 全局令牌桶限流。
func rateLimit(tb *middleware.TokenBucket) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tb.Allow(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// outgoing 把 Authorization 头透传到后端 gRPC metadata，并统一超时。
func outgoing(c *gin.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	if ah := strings.TrimSpace(c.GetHeader("Authorization")); ah != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", ah)
	}
	return ctx, cancel
}

// writeGRPCError 把 gRPC 状态码映射为 HTTP 状态码。
func writeGRPCError(c *gin.Context, err error) {
	st, ok := status.FromError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	httpCode := http.StatusInternalServerError
	switch st.Code() {
	case codes.InvalidArgument:
		httpCode = http.StatusBadRequest
	case codes.NotFound:
		httpCode = http.StatusNotFound
	case codes.AlreadyExists, codes.FailedPrecondition:
		httpCode = http.StatusConflict
	case codes.Unauthenticated:
		httpCode = http.StatusUnauthorized
	case codes.PermissionDenied:
		httpCode = http.StatusForbidden
	case codes.Unavailable:
		httpCode = http.StatusBadGateway
	}
	c.JSON(httpCode, gin.H{"error": st.Message()})
}

func (g *gateway) registerUser(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Nickname string `json:"nickname"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *userpb.RegisterUserResponse
	err := g.userCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.users.RegisterUser(ctx, &userpb.RegisterUserRequest{
			Username: req.Username,
			Password: req.Password,
			Nickname: req.Nickname,
			Phone:    req.Phone,
			Email:    req.Email,
		})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.GetUser())
}

func (g *gateway) login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *userpb.LoginResponse
	err := g.userCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.users.Login(ctx, &userpb.LoginRequest{
			Username: req.Username,
			Password: req.Password,
		})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": resp.GetAccessToken(),
		"expires_at":   resp.GetExpiresAt(),
		"user":         resp.GetUser(),
	})
}

func (g *gateway) profile(c *gin.Context) {
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *userpb.GetProfileResponse
	err := g.userCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.users.GetProfile(ctx, &userpb.GetProfileRequest{})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.GetUser())
}

func (g *gateway) requestOwnerUpgrade(c *gin.Context) {
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *userpb.RequestOwnerUpgradeResponse
	err := g.userCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.users.RequestOwnerUpgrade(ctx, &userpb.RequestOwnerUpgradeRequest{
			UserId: c.Param("id"),
		})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.GetUser())
}

func (g *gateway) approveOwnerUpgrade(c *gin.Context) {
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *userpb.ApproveOwnerUpgradeResponse
	err := g.userCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.users.ApproveOwnerUpgrade(ctx, &userpb.ApproveOwnerUpgradeRequest{
			UserId: c.Param("id"),
		})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.GetUser())
}

func (g *gateway) listVehicles(c *gin.Context) {
	ctx, cancel := outgoing(c)
	defer cancel()

	var page, size int32
	fmt.Sscanf(c.DefaultQuery("page", "1"), "%d", &page)
	fmt.Sscanf(c.DefaultQuery("page_size", "20"), "%d", &size)

	var resp *vehiclepb.ListVehiclesResponse
	err := g.vehicleCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.vehicles.ListVehicles(ctx, &vehiclepb.ListVehiclesRequest{
			OwnerId:  c.Query("owner_id"),
			City:     c.Query("city"),
			Page:     page,
			PageSize: size,
		})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": resp.GetVehicles(), "total": resp.GetTotal()})
}

func (g *gateway) getVehicle(c *gin.Context) {
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *vehiclepb.GetVehicleResponse
	err := g.vehicleCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.vehicles.GetVehicle(ctx, &vehiclepb.GetVehicleRequest{Id: c.Param("id")})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.GetVehicle())
}

func (g *gateway) upsertVehicle(c *gin.Context) {
	var req struct {
		ID             string `json:"id"`
		PlateNumber    string `json:"plate_number"`
		Model          string `json:"model"`
		City           string `json:"city"`
		OwnerID        string `json:"owner_id"`
		DailyRateCents int64  `json:"daily_rate_cents"`
		Currency       string `json:"currency"`
		Status         string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *vehiclepb.UpsertVehicleResponse
	err := g.vehicleCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.vehicles.UpsertVehicle(ctx, &vehiclepb.UpsertVehicleRequest{
			Vehicle: &vehiclepb.Vehicle{
				Id:             req.ID,
				PlateNumber:    req.PlateNumber,
				Model:          req.Model,
				City:           req.City,
				OwnerId:        req.OwnerID,
				DailyRateCents: req.DailyRateCents,
				Currency:       req.Currency,
				Status:         req.Status,
			},
		})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.GetVehicle())
}

func (g *gateway) createBooking(c *gin.Context) {
	var req struct {
		VehicleID  string `json:"vehicle_id"`
		RenterID   string `json:"renter_id"`
		PickupDate string `json:"pickup_date"`
		ReturnDate string `json:"return_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *bookingpb.CreateBookingResponse
	err := g.bookingCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.bookings.CreateBooking(ctx, &bookingpb.CreateBookingRequest{
			VehicleId:  req.VehicleID,
			RenterId:   req.RenterID,
			PickupDate: req.PickupDate,
			ReturnDate: req.ReturnDate,
		})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp.GetBooking())
}

func (g *gateway) listBookings(c *gin.Context) {
	renterID := strings.TrimSpace(c.Query("renter_id"))
	if renterID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "renter_id required"})
		return
	}
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *bookingpb.ListRenterBookingsResponse
	err := g.bookingCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.bookings.ListRenterBookings(ctx, &bookingpb.ListRenterBookingsRequest{RenterId: renterID})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": resp.GetBookings()})
}

func (g *gateway) getBooking(c *gin.Context) {
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *bookingpb.GetBookingResponse
	err := g.bookingCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.bookings.GetBooking(ctx, &bookingpb.GetBookingRequest{Id: c.Param("id")})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.GetBooking())
}

func (g *gateway) confirmPayment(c *gin.Context) {
	var req struct {
		PaymentMethod string `json:"payment_method"`
	}
	// body 可省略（使用默认支付方式）
	_ = c.ShouldBindJSON(&req)

	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *bookingpb.ConfirmPaymentResponse
	err := g.bookingCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.bookings.ConfirmPayment(ctx, &bookingpb.ConfirmPaymentRequest{
			BookingId:     c.Param("id"),
			PaymentMethod: req.PaymentMethod,
		})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.GetBooking())
}

func (g *gateway) cancelBooking(c *gin.Context) {
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *bookingpb.CancelBookingResponse
	err := g.bookingCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.bookings.CancelBooking(ctx, &bookingpb.CancelBookingRequest{BookingId: c.Param("id")})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp.GetBooking())
}

func (g *gateway) checkAvailability(c *gin.Context) {
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *bookingpb.CheckAvailabilityResponse
	err := g.bookingCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.bookings.CheckAvailability(ctx, &bookingpb.CheckAvailabilityRequest{
			VehicleId:  c.Query("vehicle_id"),
			PickupDate: c.Query("pickup_date"),
			ReturnDate: c.Query("return_date"),
		})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": resp.GetAvailable()})
}

func (g *gateway) ownerStats(c *gin.Context) {
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *statspb.OwnerStatsResponse
	err := g.bookingCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.stats.OwnerStats(ctx, &statspb.OwnerStatsRequest{OwnerEmail: c.Query("email")})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (g *gateway) adminStats(c *gin.Context) {
	ctx, cancel := outgoing(c)
	defer cancel()

	var resp *statspb.AdminStatsResponse
	err := g.bookingCB.Call(ctx, func() error {
		var callErr error
		resp, callErr = g.stats.AdminStats(ctx, &statspb.AdminStatsRequest{})
		return callErr
	})
	if err != nil {
		writeGRPCError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
