package host

import (
	"context"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Vilsol/memdbg/client"
	"github.com/Vilsol/memdbg/config"
	"github.com/Vilsol/memdbg/dump"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	server := httptest.NewServer(Handler(dump.Default()))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data := []byte("\x41 \x68 \x90 \x00 \x2f This is a test string, The Line Break will demonstrate multiline formatting!")

	reply, err := client.Dump(ctx, strings.TrimPrefix(server.URL, "http://"), data)
	require.Nil(t, err)
	require.Equal(t, dump.Format(data), reply)

	reply, err = client.Dump(ctx, strings.TrimPrefix(server.URL, "http://"), nil)
	require.Nil(t, err)
	require.Equal(t, "", reply)
}

func TestDialError(t *testing.T) {
	server := httptest.NewServer(Handler(dump.Default()))
	address := strings.TrimPrefix(server.URL, "http://")
	server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Dump(ctx, address, []byte("x"))
	require.NotNil(t, err)
}

func TestRunHostStops(t *testing.T) {
	viper.Reset()
	config.InitializeConfig("")
	viper.Set("socket.port", 0)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- RunHost(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.Nil(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("host did not stop")
	}
}

func TestRunHostInvalidConfig(t *testing.T) {
	viper.Reset()
	config.InitializeConfig("")
	viper.Set("dump.group_width", 0)

	require.NotNil(t, RunHost(context.Background()))
}

func TestRunHostListenError(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err)
	defer listener.Close()

	viper.Reset()
	config.InitializeConfig("")
	viper.Set("socket.port", listener.Addr().(*net.TCPAddr).Port)

	done := make(chan error, 1)
	go func() {
		done <- RunHost(context.Background())
	}()

	select {
	case err := <-done:
		require.NotNil(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("host did not fail on a busy port")
	}
}
