package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Darkphantom323/LifePulse/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	RT *services.RealtimeHub
}

func NewRealtimeController(rt *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{RT: rt}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

// ActivityWS streams activity events to the authenticated user so an open
// dashboard refreshes without polling. The first frame is a full dashboard
// snapshot; everything after is an incremental activity event.
func (rc *RealtimeController) ActivityWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := &services.WSClient{UserID: uid, Conn: conn}
	rc.RT.Register(cl)

	if snapshot, err := services.GetDashboard(uid); err == nil {
		if msg, err := json.Marshal(gin.H{"kind": "activity.snapshot", "data": snapshot}); err == nil {
			_ = cl.Send(websocket.TextMessage, msg)
		}
	}

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := cl.Send(websocket.PingMessage, nil); err != nil {
				rc.RT.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.RT.Unregister(cl)
			return
		}
	}
}
