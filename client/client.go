package client

import (
	"context"
	"io"

	"github.com/Vilsol/memdbg/utils"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Dump sends data to a memdbg host and returns the rendered dump.
func Dump(ctx context.Context, address string, data []byte) (string, error) {
	conn, br, _, err := ws.DefaultDialer.Dial(ctx, "ws://"+address)
	if err != nil {
		return "", errors.Wrap(err, "error dialing host")
	}

	defer conn.Close()

	entry := log.WithField("remote", conn.RemoteAddr().String())

	// Frames sent right after the handshake may already sit in br.
	var rw io.ReadWriter = conn
	if br != nil {
		defer ws.PutReader(br)
		rw = struct {
			io.Reader
			io.Writer
		}{br, conn}
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			entry.Debug("Error setting deadline: ", err)
		}
	}

	utils.LogDump(entry, "["+address+"] <-", data)

	if err := wsutil.WriteClientBinary(rw, data); err != nil {
		return "", errors.Wrap(err, "error writing message")
	}

	reply, err := wsutil.ReadServerText(rw)
	if err != nil {
		return "", errors.Wrap(err, "error reading message")
	}

	closeFrame := ws.MaskFrameInPlace(ws.NewCloseFrame(ws.NewCloseFrameBody(ws.StatusNormalClosure, "")))
	if err := ws.WriteFrame(conn, closeFrame); err != nil {
		entry.Debug("Error writing close frame: ", err)
	}

	return string(reply), nil
}
