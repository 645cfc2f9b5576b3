package host

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/Vilsol/memdbg/config"
	"github.com/Vilsol/memdbg/dump"
	"github.com/Vilsol/memdbg/utils"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func Address() string {
	return net.JoinHostPort(viper.GetString("socket.host"), strconv.Itoa(viper.GetInt("socket.port")))
}

// RunHost serves dumps over websocket until ctx is done.
func RunHost(ctx context.Context) error {
	f, err := config.Formatter()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    Address(),
		Handler: Handler(f),
	}

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			if err := server.Close(); err != nil {
				log.Debug("Error closing host: ", err)
			}
		case <-stopped:
		}
	}()

	log.Infof("Started memdbg host on %s", server.Addr)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "error serving websocket")
	}

	return nil
}

// Handler answers every data frame with a text frame holding its dump.
func Handler(f *dump.Formatter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			log.Error("Error upgrading request: ", err)
			return
		}

		go serve(conn, f)
	})
}

func serve(conn net.Conn, f *dump.Formatter) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	entry := log.WithField("remote", remote)

	entry.Infof("New connection from: %s", remote)

	for {
		msg, _, err := wsutil.ReadClientData(conn)
		if err != nil {
			if _, ok := err.(wsutil.ClosedError); !ok {
				entry.Error("Error reading message: ", err)
			}
			break
		}

		utils.LogDump(entry, "["+remote+"] ->", msg)

		if err := wsutil.WriteServerText(conn, []byte(strings.Join(f.Lines(msg), "\n"))); err != nil {
			entry.Error("Error writing message: ", err)
			return
		}
	}

	entry.Infof("Closing connection to: %s", remote)
}
